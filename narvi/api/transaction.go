package api

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/alapierre/go-narvi-client/narvi/model"
)

type TransactionService interface {
	Create(ctx context.Context, req model.TransactionCreateRequest) (TransactionResult, error)
	List(ctx context.Context, query map[string]any) (TransactionListResult, error)
	Retrieve(ctx context.Context, pid string) (TransactionResult, error)
	AcceptVop(ctx context.Context, pid string, accept bool) (TransactionResult, error)
}

// TransactionResult is the dispatcher result plus the transaction decoded on
// success.
type TransactionResult struct {
	Result
	Transaction model.Transaction
}

type TransactionListResult struct {
	Result
	Transactions []model.Transaction
}

type transaction struct {
	client Client
}

func NewTransactionService(client Client) TransactionService {
	return &transaction{client: client}
}

// Create submits an outgoing payment. The response may carry a Verification
// of Payee block; interpreting it is the caller's concern (see narvi.Client
// CreateTransactionWithVop).
func (t *transaction) Create(ctx context.Context, req model.TransactionCreateRequest) (TransactionResult, error) {

	log.Debugf("Create transaction of %s %s", req.Amount, req.Currency)

	res, err := t.client.Post(ctx, "/transactions/create", req)
	if err != nil {
		return TransactionResult{}, err
	}
	return decodeTransaction(res)
}

func (t *transaction) List(ctx context.Context, query map[string]any) (TransactionListResult, error) {

	log.Debug("List transactions")

	res, err := t.client.Get(ctx, "/transactions/list", query)
	if err != nil {
		return TransactionListResult{}, err
	}

	out := TransactionListResult{Result: res}
	if !res.Success {
		return out, nil
	}

	var list model.TransactionListResponse
	if err := res.Decode(&list); err != nil {
		return out, err
	}
	out.Transactions = list.Results
	return out, nil
}

func (t *transaction) Retrieve(ctx context.Context, pid string) (TransactionResult, error) {

	log.Debugf("Retrieve transaction %s", pid)

	res, err := t.client.Get(ctx, fmt.Sprintf("/transactions/retrieve/%s", pid), nil)
	if err != nil {
		return TransactionResult{}, err
	}
	return decodeTransaction(res)
}

// AcceptVop confirms or rejects a transaction held on a Verification of
// Payee outcome.
func (t *transaction) AcceptVop(ctx context.Context, pid string, accept bool) (TransactionResult, error) {

	log.Debugf("Accept VOP for transaction %s: %t", pid, accept)

	res, err := t.client.Patch(ctx, fmt.Sprintf("/transactions/update/%s", pid), map[string]any{
		"accept_vop": accept,
	})
	if err != nil {
		return TransactionResult{}, err
	}
	return decodeTransaction(res)
}

func decodeTransaction(res Result) (TransactionResult, error) {
	out := TransactionResult{Result: res}
	if !res.Success {
		return out, nil
	}
	if err := res.Decode(&out.Transaction); err != nil {
		return out, err
	}
	return out, nil
}
