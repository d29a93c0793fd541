package narvi

import (
	"context"
	"fmt"

	"github.com/alapierre/go-narvi-client/narvi/api"
	"github.com/alapierre/go-narvi-client/narvi/model"
)

// VopPolicy controls what happens on a close-match verification outcome.
type VopPolicy struct {
	// AutoAcceptCloseMatch confirms CMTC transactions without asking the
	// user. Exact and no-match outcomes are never auto-confirmed.
	AutoAcceptCloseMatch bool
}

// TransactionOutcome is the create-transaction result augmented with the
// verification decision.
type TransactionOutcome struct {
	api.TransactionResult

	// RequiresVopConfirmation is set for a close match that was not
	// auto-accepted; the caller must collect a decision and call
	// Transactions.AcceptVop.
	RequiresVopConfirmation bool

	// VopAccepted reports that the close match was confirmed automatically;
	// VopResponse carries the platform's answer to that confirmation.
	VopAccepted bool
	VopResponse *model.Transaction

	// VopWarning is set on a no-match outcome. The transaction is left
	// pending remotely; nothing is confirmed or rejected automatically.
	VopWarning string
}

// CreateTransactionWithVop creates a payment and applies the Verification of
// Payee policy to the outcome:
//
//   - MTCH and NOAP pass through untouched,
//   - CMTC is confirmed once when the policy allows it, otherwise flagged
//     for manual confirmation,
//   - NMTC only sets a warning. No automatic reject call is made; whether
//     no-match transactions should be rejected outright is a pending product
//     decision, so the observed warn-only behavior is kept.
func (c *Client) CreateTransactionWithVop(ctx context.Context, req model.TransactionCreateRequest, policy VopPolicy) (TransactionOutcome, error) {

	created, err := c.Transactions.Create(ctx, req)
	if err != nil {
		return TransactionOutcome{}, err
	}

	outcome := TransactionOutcome{TransactionResult: created}
	if !created.Success {
		return outcome, nil
	}

	vop := created.Transaction.Vop
	if vop == nil {
		// Verification was not returned for this call; nothing to decide.
		return outcome, nil
	}

	switch vop.MatchType {
	case model.MatchExact, model.MatchNotSupported:
		// Proceeds as created.

	case model.MatchClose:
		if !policy.AutoAcceptCloseMatch {
			outcome.RequiresVopConfirmation = true
			break
		}

		logger.Debugf("auto-accepting close match for transaction %s", created.Transaction.Pid)
		accepted, err := c.Transactions.AcceptVop(ctx, created.Transaction.Pid, true)
		if err != nil {
			return outcome, err
		}
		outcome.VopAccepted = true
		outcome.VopResponse = &accepted.Transaction

	case model.MatchNone:
		outcome.VopWarning = fmt.Sprintf(
			"recipient name %q did not match the account holder for %s",
			req.Recipient.Name, req.Recipient.Iban)

	default:
		return outcome, fmt.Errorf("unhandled VOP match type: %q", vop.MatchType)
	}

	return outcome, nil
}
