package payment_test

import (
	"testing"

	json "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	models "github.com/pix-donation-gateway/internal/application/payment/models"
)

func TestNewTransaction_CopiesQRCodeIntoBothFields(t *testing.T) {
	tx := models.NewTransaction(models.ProviderTransaction{
		ID:     models.NewProviderID("tx_9"),
		Amount: decimal.NewFromInt(40),
		Status: "waiting_payment",
		Pix:    &models.PixDetails{QRCode: "000201xyz", ExpirationDate: "2025-02-01T12:00:00Z"},
	})

	require.Equal(t, "000201xyz", tx.QRCode)
	require.Equal(t, "000201xyz", tx.QRCodeText)
	require.NotNil(t, tx.ExpirationDate)
	require.Equal(t, "2025-02-01T12:00:00Z", *tx.ExpirationDate)
}

func TestNewTransaction_EmptyExpirationIsNull(t *testing.T) {
	tx := models.NewTransaction(models.ProviderTransaction{
		ID:  models.NewProviderID("tx_10"),
		Pix: &models.PixDetails{QRCode: "000201"},
	})
	require.Nil(t, tx.ExpirationDate)
}

func TestProviderTransaction_DecodesMissingPix(t *testing.T) {
	p := models.ProviderTransaction{}
	require.NoError(t, json.Unmarshal([]byte(`{"id":"tx_3","amount":"99.90","status":"paid"}`), &p))
	require.Nil(t, p.Pix)
	require.True(t, decimal.RequireFromString("99.90").Equal(p.Amount))

	b, err := json.Marshal(models.SuccessResult(models.NewTransaction(p)))
	require.NoError(t, err)
	require.JSONEq(t, `{"success":true,"transaction":{"id":"tx_3","qrCode":"","qrCodeText":"","amount":99.9,"status":"paid","expirationDate":null}}`, string(b))
}

func TestFailureResult(t *testing.T) {
	b, err := json.Marshal(models.FailureResult(""))
	require.NoError(t, err)
	require.JSONEq(t, `{"success":false,"error":"Error processing payment"}`, string(b))
}

func TestNewDonationPayload_Shape(t *testing.T) {
	b, err := json.Marshal(models.NewDonationPayload(decimal.RequireFromString("35.5")))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"amount": 35.5,
		"paymentMethod": "pix",
		"items": [{"title": "Doação - Ajude o Paraná", "unitPrice": 35.5, "quantity": 1, "tangible": false}],
		"customer": {
			"name": "Doador Online",
			"email": "doacao@vakinha.com",
			"phone": "11999999999",
			"document": {"type": "cpf", "number": "00000000000"}
		}
	}`, string(b))
}
