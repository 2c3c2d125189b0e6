package handlers

import (
	"encoding/json"
	"maps"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

var responseHeaders = map[string]string{
	"Content-Type":                 "application/json",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "OPTIONS,POST,GET,PUT,DELETE",
	"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key",
}

type errorBody struct {
	Error string `json:"error"`
}

func emptyResponse(status int) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    maps.Clone(responseHeaders),
	}
}

func jsonResponse(status int, v any) events.APIGatewayProxyResponse {
	raw, err := json.Marshal(v)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    maps.Clone(responseHeaders),
			Body:       `{"error":"` + msgInternal + `"}`,
		}
	}
	resp := emptyResponse(status)
	resp.Body = string(raw)
	return resp
}

func errorResponse(status int, msg string) events.APIGatewayProxyResponse {
	return jsonResponse(status, errorBody{Error: msg})
}
