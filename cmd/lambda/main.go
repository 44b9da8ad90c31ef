package main

import (
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/pix-donation-gateway/internal/api"
	paymentGateway "github.com/pix-donation-gateway/internal/application/payment/gateway"
	paymentProcessor "github.com/pix-donation-gateway/internal/application/payment/processors"
	"github.com/pix-donation-gateway/internal/config"
	"github.com/pix-donation-gateway/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.NewJSONLogger(os.Stdout)
	pp := paymentProcessor.NewPaymentProcessor(cfg.ProviderURL, cfg.ProviderTimeout, logger)
	gw := paymentGateway.New(pp, cfg.Credentials, logger)

	lambda.Start(api.NewLambdaHandler(gw))
}
