// Command lambda serves the same Fiber app behind API Gateway.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	fiberadapter "github.com/awslabs/aws-lambda-go-api-proxy/fiber"
	"github.com/sirupsen/logrus"

	"gloopclub_backend/internals/configs"
	"gloopclub_backend/internals/server"
)

var adapter *fiberadapter.FiberLambda

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	cfg, err := configs.Decode()
	if err != nil {
		logrus.WithError(err).Fatal("❌ invalid configuration")
	}
	log := configs.NewLogger(cfg)

	// the pool lives as long as the execution environment
	rt, err := server.Bootstrap(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("❌ bootstrap failed")
	}

	adapter = fiberadapter.New(rt.App)
	lambda.Start(handler)
}
