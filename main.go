package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/alapierre/go-narvi-client/narvi"
	"github.com/alapierre/go-narvi-client/narvi/model"
)

func main() {

	logrus.SetLevel(logrus.DebugLevel)

	conf, err := narvi.ConfigFromEnv()
	if err != nil {
		panic(err)
	}

	client, err := narvi.NewClient(conf)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()

	res, err := client.Provision(ctx, narvi.Individual, narvi.Application{
		FirstName:     "John",
		LastName:      "Doe",
		Country:       "FR",
		Nationality:   "FR",
		SourceOfFunds: "salary",
	})
	if err != nil {
		panic(err)
	}

	switch res.Status {
	case narvi.Provisioned:
		fmt.Printf("entity %s with account %s (%s)\n", res.Entity.Pid, res.Account.Pid, res.Account.Iban)
	case narvi.EntityOnly:
		// The entity exists remotely; do not retry from scratch.
		fmt.Printf("entity %s created but account issuance failed: %v\n", res.Entity.Pid, res.AccountErr)
		return
	case narvi.Failed:
		fmt.Printf("entity creation failed: %v\n", res.EntityErr)
		return
	}

	outcome, err := client.CreateTransactionWithVop(ctx, model.TransactionCreateRequest{
		AccountPid: res.Account.Pid,
		Amount:     1234,
		Currency:   "EUR",
		Recipient: model.Recipient{
			Iban: "FR7630006000011234567890189",
			Name: "Jane Roe",
		},
		Description: "first payment",
	}, narvi.VopPolicy{AutoAcceptCloseMatch: false})
	if err != nil {
		panic(err)
	}

	switch {
	case !outcome.Success:
		fmt.Printf("transaction rejected: %s\n", outcome.Error)
	case outcome.RequiresVopConfirmation:
		fmt.Printf("transaction %s needs payee confirmation\n", outcome.Transaction.Pid)
	case outcome.VopWarning != "":
		fmt.Printf("transaction %s flagged: %s\n", outcome.Transaction.Pid, outcome.VopWarning)
	default:
		fmt.Printf("transaction %s created, status %s\n", outcome.Transaction.Pid, outcome.Transaction.Status)
	}
}
