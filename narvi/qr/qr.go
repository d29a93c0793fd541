// Package qr builds EPC069-12 "scan to pay" payloads for issued accounts,
// so a top-up to a freshly provisioned IBAN can be initiated from any
// European banking app.
package qr

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alapierre/go-narvi-client/narvi/model"
)

var logger = logrus.WithField("component", "narvi.qr")

const (
	serviceTag = "BCD"
	version    = "002"
	charsetUTF = "1"
	sctID      = "SCT"
)

// Payment describes one SEPA credit transfer to encode. Amount zero means
// the payer chooses the amount in their app.
type Payment struct {
	Name      string
	Iban      string
	Bic       string
	Amount    model.Amount
	Currency  string
	Reference string
}

// ForAccount prepares a top-up payment to an issued account.
func ForAccount(account model.Account, holderName string, amount model.Amount) Payment {
	return Payment{
		Name:     holderName,
		Iban:     account.Iban,
		Bic:      account.Bic,
		Amount:   amount,
		Currency: account.Currency,
	}
}

// EpcPayload renders the payment as an EPC069-12 string, one field per line.
func EpcPayload(p Payment) (string, error) {

	if strings.TrimSpace(p.Name) == "" {
		return "", fmt.Errorf("beneficiary name is required")
	}
	iban := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(p.Iban)), " ", "")
	if iban == "" {
		return "", fmt.Errorf("beneficiary IBAN is required")
	}
	if len(p.Name) > 70 {
		return "", fmt.Errorf("beneficiary name exceeds 70 characters")
	}

	currency := p.Currency
	if currency == "" {
		currency = "EUR"
	}

	amount := ""
	if p.Amount > 0 {
		amount = currency + p.Amount.String()
	}

	logger.Debugf("EPC payload for %s", iban)

	lines := []string{
		serviceTag,
		version,
		charsetUTF,
		sctID,
		p.Bic,
		p.Name,
		iban,
		amount,
		"", // purpose code, unused
		p.Reference,
	}
	return strings.Join(lines, "\n"), nil
}
