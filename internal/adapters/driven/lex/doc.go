// Package lex implements driven.BotModelService on top of the Amazon Lex
// model building API (aws-sdk-go-v2).
//
// The client throttles requests with a token bucket when configured,
// converts SDK output into domain types, and maps smithy API errors to
// *APIError. Retries are left to the SDK's standard retryer.
package lex
