package payment_test

import (
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	models "github.com/pix-donation-gateway/internal/application/payment/models"
)

func TestProviderID_KeepsNumericAndStringIDs(t *testing.T) {
	cases := []struct {
		body    string
		emitted string
		logged  string
	}{
		{`{"id":12345}`, `{"id":12345,"qrCode":"","qrCodeText":"","amount":0,"status":"","expirationDate":null}`, "12345"},
		{`{"id":"tx_1"}`, `{"id":"tx_1","qrCode":"","qrCodeText":"","amount":0,"status":"","expirationDate":null}`, "tx_1"},
		{`{}`, `{"id":null,"qrCode":"","qrCodeText":"","amount":0,"status":"","expirationDate":null}`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.body, func(t *testing.T) {
			p := models.ProviderTransaction{}
			require.NoError(t, json.Unmarshal([]byte(tc.body), &p))
			require.Equal(t, tc.logged, p.ID.String())

			b, err := json.Marshal(models.NewTransaction(p))
			require.NoError(t, err)
			require.JSONEq(t, tc.emitted, string(b))
		})
	}
}

func TestNewProviderID_QuotesString(t *testing.T) {
	b, err := json.Marshal(models.NewProviderID("tx_7"))
	require.NoError(t, err)
	require.Equal(t, `"tx_7"`, string(b))
}
