package payment

import "github.com/shopspring/decimal"

const (
	PaymentMethodPix = "pix"
	DocumentTypeCPF  = "cpf"
	DonationTitle    = "Doação - Ajude o Paraná"
)

// The provider requires a customer on every transaction. Donations are
// anonymous, so the same placeholder donor is always sent.
var DonorPlaceholder = Customer{
	Name:  "Doador Online",
	Email: "doacao@vakinha.com",
	Phone: "11999999999",
	Document: Document{
		Type:   DocumentTypeCPF,
		Number: "00000000000",
	},
}

type Item struct {
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Tangible  bool            `json:"tangible"`
}

type Document struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type Customer struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Document Document `json:"document"`
}

type TransactionPayload struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Items         []Item          `json:"items"`
	Customer      Customer        `json:"customer"`
}

func NewDonationPayload(amount decimal.Decimal) TransactionPayload {
	return TransactionPayload{
		Amount:        amount,
		PaymentMethod: PaymentMethodPix,
		Items: []Item{{
			Title:     DonationTitle,
			UnitPrice: amount,
			Quantity:  1,
			Tangible:  false,
		}},
		Customer: DonorPlaceholder,
	}
}

type PixDetails struct {
	QRCode         string `json:"qrcode"`
	ExpirationDate string `json:"expirationDate"`
}

type ProviderTransaction struct {
	ID     ProviderID      `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status"`
	Pix    *PixDetails     `json:"pix,omitempty"`
}
