package graph

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/notesgraph/internal/common"
)

// Error codes reported in the "extensions.code" member of GraphQL errors.
const (
	CodeUnauthenticated     = "UNAUTHENTICATED"
	CodeNotFound            = "NOT_FOUND"
	CodeAlreadyExists       = "ALREADY_EXISTS"
	CodeConstraintViolation = "CONSTRAINT_VIOLATION"
	CodeBadUserInput        = "BAD_USER_INPUT"
	CodeInternal            = "INTERNAL"
)

// Error is a resolver failure carrying a machine-readable code.
// graphql-go copies Extensions into the response error.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func badInput(msg string) *Error {
	return &Error{Code: CodeBadUserInput, Message: msg}
}

func unauthenticatedMessage(err error) string {
	if errors.Is(err, common.ErrTokenExpired) {
		return "token expired"
	}
	return "unauthorized"
}

// fail maps service errors onto GraphQL errors. Unknown errors are logged
// and reported without detail.
func (r *Resolver) fail(ctx context.Context, err error) error {
	var gqlErr *Error
	switch {
	case errors.As(err, &gqlErr):
		return gqlErr
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return &Error{Code: CodeUnauthenticated, Message: unauthenticatedMessage(err)}
	case errors.Is(err, common.ErrorNotFound):
		return &Error{Code: CodeNotFound, Message: "not found"}
	case errors.Is(err, common.ErrorAlreadyExists):
		return &Error{Code: CodeAlreadyExists, Message: "already exists"}
	case errors.Is(err, common.ErrorConstraintViolation):
		return &Error{Code: CodeConstraintViolation, Message: "constraint violation"}
	case errors.Is(err, common.ErrorValidation):
		msg := err.Error()
		if i := strings.Index(msg, common.ErrorValidation.Error()); i >= 0 {
			msg = msg[i:]
		}
		return badInput(msg)
	default:
		r.log.Error(ctx, "resolver failed", "error", err)
		return &Error{Code: CodeInternal, Message: "internal error"}
	}
}
