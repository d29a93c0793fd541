package model

// AccountCreateRequest issues a currency account for an existing entity.
type AccountCreateRequest struct {
	Currency  string     `json:"currency"`
	OwnerKind EntityKind `json:"owner_kind"`
	OwnerPid  string     `json:"owner_pid"`
}

// Account is an issued currency account (IBAN) on the platform.
type Account struct {
	Pid      string `json:"pid"`
	Iban     string `json:"iban"`
	Bic      string `json:"bic"`
	Status   string `json:"status"`
	Currency string `json:"currency"`
}

type AccountListResponse struct {
	Results []Account `json:"results"`
}
