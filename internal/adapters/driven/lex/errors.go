package lex

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"

	"github.com/custodia-labs/lexport/internal/core/domain"
)

// Error codes returned by the model building service.
const (
	CodeNotFound            = "NotFoundException"
	CodeBadRequest          = "BadRequestException"
	CodeLimitExceeded       = "LimitExceededException"
	CodeInternalFailure     = "InternalFailureException"
	CodeAccessDenied        = "AccessDeniedException"
	CodeUnrecognizedClient  = "UnrecognizedClientException"
	CodeExpiredToken        = "ExpiredTokenException"
	CodeInvalidSignature    = "InvalidSignatureException"
	CodeThrottlingException = "ThrottlingException"
)

// APIError represents an error response from the model building service.
type APIError struct {
	Operation string
	Code      string
	Message   string
	Err       error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("lex: %s: %s: %s", e.Operation, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is makes a NotFoundException match domain.ErrNotFound.
func (e *APIError) Is(target error) bool {
	return target == domain.ErrNotFound && e.Code == CodeNotFound
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == CodeNotFound
}

// IsThrottled checks if the error indicates the request rate was exceeded.
func IsThrottled(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == CodeLimitExceeded || apiErr.Code == CodeThrottlingException
}

// IsUnauthorized checks if the error indicates missing or invalid credentials.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case CodeAccessDenied, CodeUnrecognizedClient, CodeExpiredToken, CodeInvalidSignature:
		return true
	default:
		return false
	}
}

// wrapError converts smithy API errors to our error type.
func wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if isContextError(err) {
		return fmt.Errorf("%s: %w", operation, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Operation: operation,
			Code:      apiErr.ErrorCode(),
			Message:   apiErr.ErrorMessage(),
			Err:       err,
		}
	}

	return fmt.Errorf("%s: %w", operation, err)
}
