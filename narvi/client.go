package narvi

import (
	"github.com/alapierre/go-narvi-client/narvi/api"
)

// Client bundles the platform services over one signed dispatcher.
type Client struct {
	Entities     api.EntityService
	Accounts     api.AccountService
	Transactions api.TransactionService
}

func NewClient(conf Config) (*Client, error) {
	if err := conf.validate(); err != nil {
		return nil, err
	}

	dispatcher := api.New(api.Config{
		APIKeyID: conf.APIKeyID,
		BaseURL:  conf.Env.BaseURL(),
		BaasURL:  conf.Env.BaasURL(),
		Signer:   conf.Signer,
	})

	return newClientWith(dispatcher), nil
}

// NewClientWithDispatcher wires the services over a caller-supplied
// dispatcher. Intended for tests and for callers that need a custom base URL.
func NewClientWithDispatcher(dispatcher api.Client) *Client {
	return newClientWith(dispatcher)
}

func newClientWith(dispatcher api.Client) *Client {
	return &Client{
		Entities:     api.NewEntityService(dispatcher),
		Accounts:     api.NewAccountService(dispatcher),
		Transactions: api.NewTransactionService(dispatcher),
	}
}
