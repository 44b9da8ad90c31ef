package payment

import (
	"bytes"
	"errors"

	json "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

// MinimumAmount is the smallest donation accepted, in BRL (currency-major units).
var MinimumAmount = decimal.RequireFromString("20.00")

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

func MinimumAmountMessage() string {
	return "Minimum value is " + MinimumAmount.StringFixed(2)
}

var (
	errEmptyBody = errors.New("request body is empty")
	errNullBody  = errors.New("request body is null")
)

type DonationRequest struct {
	Amount json.RawMessage `json:"amount"`
}

// ParseDonation fails when body is empty, a bare null, or not valid JSON.
// Whether the amount is usable is decided by ValidAmount.
func ParseDonation(body []byte) (DonationRequest, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return DonationRequest{}, errEmptyBody
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return DonationRequest{}, errNullBody
	}

	req := DonationRequest{}
	if err := json.Unmarshal(body, &req); err != nil {
		return DonationRequest{}, err
	}
	return req, nil
}

// ValidAmount returns the amount when it is a JSON number, not zero and not
// below MinimumAmount.
func (r DonationRequest) ValidAmount() (decimal.Decimal, bool) {
	raw := bytes.TrimSpace(r.Amount)
	if len(raw) == 0 || !isNumberToken(raw[0]) {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Zero, false
	}
	if amount.IsZero() || amount.LessThan(MinimumAmount) {
		return decimal.Zero, false
	}
	return amount, true
}

func isNumberToken(c byte) bool {
	return c == '-' || (c >= '0' && c <= '9')
}
