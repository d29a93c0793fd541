// Package sepa renders transactions as pain.001.001.03 credit transfer
// initiation documents. The export exists for manual reconciliation: when
// onboarding or a payment ends in a partial state, operations can hand the
// XML to another bank instead of re-driving the API.
package sepa

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/alapierre/go-narvi-client/narvi/model"
)

var logger = logrus.WithField("component", "narvi.sepa")

// Debtor is the paying side, taken from the issued account.
type Debtor struct {
	Name string
	Iban string
	Bic  string
}

// CreditTransfer is one pain.001 message.
type CreditTransfer struct {
	MessageID    string
	CreatedAt    time.Time
	Debtor       Debtor
	Transactions []model.Transaction
}

// Build renders the message as indented XML.
func Build(ct CreditTransfer) ([]byte, error) {

	if ct.MessageID == "" {
		return nil, fmt.Errorf("message id is required")
	}
	if ct.Debtor.Name == "" || ct.Debtor.Iban == "" {
		return nil, fmt.Errorf("debtor name and IBAN are required")
	}
	if len(ct.Transactions) == 0 {
		return nil, fmt.Errorf("at least one transaction is required")
	}

	createdAt := ct.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var controlSum model.Amount
	for _, tx := range ct.Transactions {
		controlSum += tx.Amount
	}

	logger.Debugf("building pain.001 %s with %d transactions", ct.MessageID, len(ct.Transactions))

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Document")
	root.CreateAttr("xmlns", "urn:iso:std:iso:20022:tech:xsd:pain.001.001.03")

	init := root.CreateElement("CstmrCdtTrfInitn")

	grpHdr := init.CreateElement("GrpHdr")
	grpHdr.CreateElement("MsgId").SetText(ct.MessageID)
	grpHdr.CreateElement("CreDtTm").SetText(createdAt.Format("2006-01-02T15:04:05"))
	grpHdr.CreateElement("NbOfTxs").SetText(strconv.Itoa(len(ct.Transactions)))
	grpHdr.CreateElement("CtrlSum").SetText(controlSum.String())
	grpHdr.CreateElement("InitgPty").CreateElement("Nm").SetText(ct.Debtor.Name)

	pmtInf := init.CreateElement("PmtInf")
	pmtInf.CreateElement("PmtInfId").SetText(ct.MessageID + "-1")
	pmtInf.CreateElement("PmtMtd").SetText("TRF")
	pmtInf.CreateElement("ReqdExctnDt").SetText(createdAt.Format("2006-01-02"))
	pmtInf.CreateElement("Dbtr").CreateElement("Nm").SetText(ct.Debtor.Name)
	pmtInf.CreateElement("DbtrAcct").CreateElement("Id").CreateElement("IBAN").SetText(ct.Debtor.Iban)
	if ct.Debtor.Bic != "" {
		pmtInf.CreateElement("DbtrAgt").CreateElement("FinInstnId").CreateElement("BIC").SetText(ct.Debtor.Bic)
	}

	for _, tx := range ct.Transactions {
		if tx.Recipient.Iban == "" {
			return nil, fmt.Errorf("transaction %s has no recipient IBAN", tx.Pid)
		}

		txInf := pmtInf.CreateElement("CdtTrfTxInf")
		txInf.CreateElement("PmtId").CreateElement("EndToEndId").SetText(tx.Pid)

		currency := tx.Currency
		if currency == "" {
			currency = "EUR"
		}
		amt := txInf.CreateElement("Amt").CreateElement("InstdAmt")
		amt.CreateAttr("Ccy", currency)
		amt.SetText(tx.Amount.String())

		txInf.CreateElement("Cdtr").CreateElement("Nm").SetText(tx.Recipient.Name)
		txInf.CreateElement("CdtrAcct").CreateElement("Id").CreateElement("IBAN").SetText(tx.Recipient.Iban)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
