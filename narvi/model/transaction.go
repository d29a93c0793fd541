package model

import (
	"fmt"
	"strings"
)

// MatchType is the Verification of Payee outcome attached to a created
// transaction.
type MatchType string

const (
	// MatchExact - recipient name matches the account holder exactly.
	MatchExact MatchType = "MTCH"
	// MatchClose - close but ambiguous match, needs a decision.
	MatchClose MatchType = "CMTC"
	// MatchNone - recipient name does not match the account holder.
	MatchNone MatchType = "NMTC"
	// MatchNotSupported - the recipient bank does not support verification.
	MatchNotSupported MatchType = "NOAP"
)

func (m MatchType) Valid() bool {
	switch m {
	case MatchExact, MatchClose, MatchNone, MatchNotSupported:
		return true
	}
	return false
}

func (m *MatchType) UnmarshalText(text []byte) error {
	val := MatchType(strings.ToUpper(strings.TrimSpace(string(text))))
	if !val.Valid() {
		return fmt.Errorf("invalid VOP match type: %q", text)
	}
	*m = val
	return nil
}

// VopResult carries the verification outcome. RecipientMatchingName is only
// present for close matches, where the platform reports the name it matched
// against.
type VopResult struct {
	MatchType             MatchType `json:"match_type"`
	RecipientMatchingName string    `json:"recipient_matching_name,omitempty"`
}

// Recipient identifies the payee of an outgoing transaction.
type Recipient struct {
	Iban    string `json:"iban"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// TransactionCreateRequest creates an outgoing payment. Amount is in minor
// units.
type TransactionCreateRequest struct {
	AccountPid  string    `json:"account_pid"`
	Amount      Amount    `json:"amount"`
	Currency    string    `json:"currency"`
	Recipient   Recipient `json:"recipient"`
	Description string    `json:"description,omitempty"`
}

// Transaction is a payment as reported by the platform. Vop is nil when the
// create call returned no verification block.
type Transaction struct {
	Pid       string     `json:"pid"`
	Amount    Amount     `json:"amount"`
	Currency  string     `json:"currency"`
	Status    string     `json:"status"`
	Recipient Recipient  `json:"recipient"`
	Vop       *VopResult `json:"vop,omitempty"`
}

type TransactionListResponse struct {
	Results []Transaction `json:"results"`
}
