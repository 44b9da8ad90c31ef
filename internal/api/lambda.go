package api

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	paymentGateway "github.com/pix-donation-gateway/internal/application/payment/gateway"
)

type LambdaHandler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// NewLambdaHandler never returns an error: every failure is already a JSON
// response, and an error would make the platform answer with its own body.
func NewLambdaHandler(gw *paymentGateway.Gateway) LambdaHandler {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		if req.HTTPMethod == http.MethodOptions {
			return toProxyResponse(gw.Handle(ctx, paymentGateway.Request{Method: req.HTTPMethod})), nil
		}

		body := []byte(req.Body)
		if req.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(req.Body)
			if err != nil {
				return toProxyResponse(gw.Fail(ctx, fmt.Errorf("failed to decode request body: %w", err))), nil
			}
			body = decoded
		}

		return toProxyResponse(gw.Handle(ctx, paymentGateway.Request{
			Method: req.HTTPMethod,
			Body:   body,
		})), nil
	}
}

func toProxyResponse(res paymentGateway.Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: res.StatusCode,
		Headers:    res.Headers,
		Body:       string(res.Body),
	}
}
