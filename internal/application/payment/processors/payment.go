package payment

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/json-iterator/go"
	models "github.com/pix-donation-gateway/internal/application/payment/models"
	"github.com/pix-donation-gateway/internal/logging"
)

const transactionsPath = "/v1/transactions"

// ProviderError is returned when the provider answers with a non-2xx status.
// Body holds the raw response text and is meant for logs only.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payment provider returned status %d", e.StatusCode)
}

type PaymentProcessor struct {
	client  *http.Client
	baseURL string
	logger  logging.Logger
}

func NewPaymentProcessor(baseURL string, timeout time.Duration, logger logging.Logger) *PaymentProcessor {
	return &PaymentProcessor{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

func (p *PaymentProcessor) CreateTransaction(
	ctx context.Context,
	creds models.Credentials,
	payload models.TransactionPayload,
) (*models.ProviderTransaction, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+transactionsPath, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create provider request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Basic "+creds.BasicAuthToken())
	req.Header.Set("Content-Type", "application/json")

	p.logger.Info("sending transaction to provider", logging.Fields(ctx, map[string]any{
		"payload": payload,
	}))

	res, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send provider request: %w", err)
	}
	defer res.Body.Close()

	if !isSuccess(res.StatusCode) {
		body, _ := io.ReadAll(res.Body)
		p.logger.Error("provider rejected transaction", logging.Fields(ctx, map[string]any{
			"status": res.StatusCode,
			"body":   string(body),
		}))
		return nil, &ProviderError{StatusCode: res.StatusCode, Body: string(body)}
	}

	tx := models.ProviderTransaction{}
	if err := json.NewDecoder(res.Body).Decode(&tx); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	p.logger.Info("transaction created", logging.Fields(ctx, map[string]any{
		"transaction_id": tx.ID.String(),
	}))
	return &tx, nil
}

func isSuccess(statusCode int) bool {
	return statusCode/100 == 2
}
