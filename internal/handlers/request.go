package handlers

import (
	"github.com/aws/aws-lambda-go/events"

	"github.com/imrishuroy/go-serviceorder-api/internal/validation"
)

// FromProxyRequest copies the fields the validators read out of an API Gateway event.
func FromProxyRequest(req events.APIGatewayProxyRequest) validation.Event {
	return validation.Event{
		Method:                req.HTTPMethod,
		Resource:              req.Resource,
		RequestID:             req.RequestContext.RequestID,
		PathParameters:        req.PathParameters,
		QueryStringParameters: req.QueryStringParameters,
		Body:                  req.Body,
		IsBase64Encoded:       req.IsBase64Encoded,
	}
}
