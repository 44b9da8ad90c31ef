package payment

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	json "github.com/json-iterator/go"
	models "github.com/pix-donation-gateway/internal/application/payment/models"
	paymentProcessor "github.com/pix-donation-gateway/internal/application/payment/processors"
	"github.com/pix-donation-gateway/internal/logging"
)

type TransactionCreator interface {
	CreateTransaction(ctx context.Context, creds models.Credentials, payload models.TransactionPayload) (*models.ProviderTransaction, error)
}

// Request is the transport-independent view of one invocation.
type Request struct {
	Method string
	Body   []byte
}

type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

type Gateway struct {
	creator TransactionCreator
	creds   models.Credentials
	logger  logging.Logger
}

func New(creator TransactionCreator, creds models.Credentials, logger logging.Logger) *Gateway {
	return &Gateway{
		creator: creator,
		creds:   creds,
		logger:  logger,
	}
}

func Headers() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type",
		"Content-Type":                 "application/json",
	}
}

func (g *Gateway) Handle(ctx context.Context, req Request) Response {
	if req.Method == http.MethodOptions {
		return Response{StatusCode: http.StatusOK, Headers: Headers(), Body: []byte{}}
	}

	ctx = logging.WithRequestID(ctx, uuid.NewString())

	donation, err := models.ParseDonation(req.Body)
	if err != nil {
		return g.Fail(ctx, &parseError{err: err})
	}

	amount, ok := donation.ValidAmount()
	if !ok {
		return respond(http.StatusBadRequest, models.FailureResult(models.MinimumAmountMessage()))
	}

	if err := g.creds.Validate(); err != nil {
		return g.Fail(ctx, err)
	}

	created, err := g.creator.CreateTransaction(ctx, g.creds, models.NewDonationPayload(amount))
	if err != nil {
		return g.Fail(ctx, err)
	}

	return respond(http.StatusOK, models.SuccessResult(models.NewTransaction(*created)))
}

// Fail logs err with its kind and returns the generic 500 envelope. Only the
// configuration error keeps its own message; provider details stay in the logs.
func (g *Gateway) Fail(ctx context.Context, err error) Response {
	g.logger.Error("payment request failed", logging.Fields(ctx, map[string]any{
		"kind":  errorKind(err),
		"error": err.Error(),
	}))

	message := models.DefaultErrorMessage
	if errors.Is(err, models.ErrMissingCredentials) {
		message = err.Error()
	}
	return respond(http.StatusInternalServerError, models.FailureResult(message))
}

func respond(status int, result models.Result) Response {
	body, err := json.Marshal(result)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"success":false,"error":"` + models.DefaultErrorMessage + `"}`)
	}
	return Response{StatusCode: status, Headers: Headers(), Body: body}
}

type parseError struct {
	err error
}

func (e *parseError) Error() string { return "invalid request body: " + e.err.Error() }
func (e *parseError) Unwrap() error { return e.err }

func errorKind(err error) string {
	var providerErr *paymentProcessor.ProviderError
	var pe *parseError
	switch {
	case errors.Is(err, models.ErrMissingCredentials):
		return "configuration"
	case errors.As(err, &providerErr):
		return "provider"
	case errors.As(err, &pe):
		return "parse"
	default:
		return "transport"
	}
}
