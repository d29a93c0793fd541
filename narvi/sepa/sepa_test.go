package sepa

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alapierre/go-narvi-client/narvi/model"
)

func testTransfer() CreditTransfer {
	return CreditTransfer{
		MessageID: "MSG-1",
		CreatedAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		Debtor: Debtor{
			Name: "John Doe",
			Iban: "LU120011001100110011",
			Bic:  "BGLLLULL",
		},
		Transactions: []model.Transaction{
			{
				Pid:       "tr_1",
				Amount:    1234,
				Currency:  "EUR",
				Recipient: model.Recipient{Iban: "FR7630006000011234567890189", Name: "Jane Roe"},
			},
			{
				Pid:       "tr_2",
				Amount:    500,
				Currency:  "EUR",
				Recipient: model.Recipient{Iban: "DE89370400440532013000", Name: "ACME GmbH"},
			},
		},
	}
}

func TestBuild(t *testing.T) {

	out, err := Build(testTransfer())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	assert.Equal(t, "MSG-1", doc.FindElement("//GrpHdr/MsgId").Text())
	assert.Equal(t, "2", doc.FindElement("//GrpHdr/NbOfTxs").Text())
	assert.Equal(t, "17.34", doc.FindElement("//GrpHdr/CtrlSum").Text())
	assert.Equal(t, "LU120011001100110011", doc.FindElement("//DbtrAcct/Id/IBAN").Text())

	txs := doc.FindElements("//CdtTrfTxInf")
	require.Len(t, txs, 2)
	assert.Equal(t, "tr_1", txs[0].FindElement("PmtId/EndToEndId").Text())
	amt := txs[0].FindElement("Amt/InstdAmt")
	assert.Equal(t, "12.34", amt.Text())
	assert.Equal(t, "EUR", amt.SelectAttrValue("Ccy", ""))
	assert.Equal(t, "Jane Roe", txs[0].FindElement("Cdtr/Nm").Text())
}

func TestBuild_Validation(t *testing.T) {

	ct := testTransfer()
	ct.MessageID = ""
	_, err := Build(ct)
	assert.Error(t, err)

	ct = testTransfer()
	ct.Debtor.Iban = ""
	_, err = Build(ct)
	assert.Error(t, err)

	ct = testTransfer()
	ct.Transactions = nil
	_, err = Build(ct)
	assert.Error(t, err)

	ct = testTransfer()
	ct.Transactions[0].Recipient.Iban = ""
	_, err = Build(ct)
	assert.Error(t, err)
}
