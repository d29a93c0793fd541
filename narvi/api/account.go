package api

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/alapierre/go-narvi-client/narvi/model"
)

// DefaultCurrency is used when account issuance does not name one.
const DefaultCurrency = "EUR"

type AccountService interface {
	Create(ctx context.Context, ownerKind model.EntityKind, ownerPid, currency string) (AccountResult, error)
	List(ctx context.Context) (AccountListResult, error)
	Retrieve(ctx context.Context, pid string) (AccountResult, error)
}

// AccountResult is the dispatcher result plus the account decoded on success.
type AccountResult struct {
	Result
	Account model.Account
}

type AccountListResult struct {
	Result
	Accounts []model.Account
}

type account struct {
	client Client
}

func NewAccountService(client Client) AccountService {
	return &account{client: client}
}

// Create issues a currency account (IBAN) for an already-created entity.
func (a *account) Create(ctx context.Context, ownerKind model.EntityKind, ownerPid, currency string) (AccountResult, error) {

	if currency == "" {
		currency = DefaultCurrency
	}

	log.Debugf("Create %s account for %s/%s", currency, ownerKind, ownerPid)

	res, err := a.client.Post(ctx, "/baas/v1.0/account/create", model.AccountCreateRequest{
		Currency:  currency,
		OwnerKind: ownerKind,
		OwnerPid:  ownerPid,
	})
	if err != nil {
		return AccountResult{}, err
	}
	return decodeAccount(res)
}

func (a *account) List(ctx context.Context) (AccountListResult, error) {

	log.Debug("List accounts")

	res, err := a.client.Get(ctx, "/account/list", nil)
	if err != nil {
		return AccountListResult{}, err
	}

	out := AccountListResult{Result: res}
	if !res.Success {
		return out, nil
	}

	var list model.AccountListResponse
	if err := res.Decode(&list); err != nil {
		return out, err
	}
	out.Accounts = list.Results
	return out, nil
}

func (a *account) Retrieve(ctx context.Context, pid string) (AccountResult, error) {

	log.Debugf("Retrieve account %s", pid)

	res, err := a.client.Get(ctx, fmt.Sprintf("/account/retrieve/%s", pid), nil)
	if err != nil {
		return AccountResult{}, err
	}
	return decodeAccount(res)
}

func decodeAccount(res Result) (AccountResult, error) {
	out := AccountResult{Result: res}
	if !res.Success {
		return out, nil
	}
	if err := res.Decode(&out.Account); err != nil {
		return out, err
	}
	return out, nil
}
