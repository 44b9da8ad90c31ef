package payment

import "github.com/shopspring/decimal"

const DefaultErrorMessage = "Error processing payment"

// Transaction is what callers see. QRCode and QRCodeText carry the same value;
// existing clients read one or the other.
type Transaction struct {
	ID             ProviderID      `json:"id"`
	QRCode         string          `json:"qrCode"`
	QRCodeText     string          `json:"qrCodeText"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	ExpirationDate *string         `json:"expirationDate"`
}

type Result struct {
	Success     bool         `json:"success"`
	Transaction *Transaction `json:"transaction,omitempty"`
	Error       string       `json:"error,omitempty"`
}

func NewTransaction(p ProviderTransaction) Transaction {
	tx := Transaction{
		ID:     p.ID,
		Amount: p.Amount,
		Status: p.Status,
	}
	if p.Pix != nil {
		tx.QRCode = p.Pix.QRCode
		tx.QRCodeText = p.Pix.QRCode
		if p.Pix.ExpirationDate != "" {
			expiration := p.Pix.ExpirationDate
			tx.ExpirationDate = &expiration
		}
	}
	return tx
}

func SuccessResult(tx Transaction) Result {
	return Result{Success: true, Transaction: &tx}
}

func FailureResult(message string) Result {
	if message == "" {
		message = DefaultErrorMessage
	}
	return Result{Success: false, Error: message}
}
