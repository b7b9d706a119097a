package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// GraphQLError is one entry of the "errors" member of a GraphQL response.
type GraphQLError struct {
	Message    string          `json:"message"`
	Extensions ErrorExtensions `json:"extensions"`
}

type ErrorExtensions struct {
	Code string `json:"code"`
}

func (e *GraphQLError) Error() string {
	if e.Extensions.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Extensions.Code, e.Message)
}

// mapError turns server error codes into the package sentinels.
func mapError(e *GraphQLError) error {
	switch e.Extensions.Code {
	case "UNAUTHENTICATED":
		return fmt.Errorf("%w: %s", ErrUnauthorized, e.Message)
	case "NOT_FOUND":
		return fmt.Errorf("%w: %s", ErrNotFound, e.Message)
	case "ALREADY_EXISTS":
		return fmt.Errorf("%w: %s", ErrAlreadyExists, e.Message)
	default:
		return e
	}
}
