package graphql

import (
	"errors"

	"github.com/dmitrijs2005/bookstore/internal/common"
)

// Error codes surfaced in the "extensions" block of GraphQL errors.
const (
	codeBadUserInput    = "BAD_USER_INPUT"
	codeUnauthenticated = "UNAUTHENTICATED"
	codeNotAuthorized   = "AUTH_NOT_AUTHORIZED"
	codeInternal        = "INTERNAL"
)

// resolverError carries an error code (and optional detail) into the
// response; graphql-go picks up Extensions() and attaches it to the error
// entry.
type resolverError struct {
	message    string
	extensions map[string]interface{}
}

func (e *resolverError) Error() string {
	return e.message
}

func (e *resolverError) Extensions() map[string]interface{} {
	return e.extensions
}

// wrapError maps service errors onto GraphQL errors. Infrastructure
// failures collapse into a generic internal error so nothing about the
// backend leaks to the caller.
func wrapError(err error) error {
	var ve *common.ValidationError
	if errors.As(err, &ve) {
		return &resolverError{
			message: ve.Error(),
			extensions: map[string]interface{}{
				"code":    codeBadUserInput,
				"reasons": ve.Reasons,
			},
		}
	}

	switch {
	case errors.Is(err, common.ErrUnknownAuthor):
		return &resolverError{
			message:    err.Error(),
			extensions: map[string]interface{}{"code": codeBadUserInput},
		}
	case errors.Is(err, common.ErrInvalidCredentials):
		return &resolverError{
			message:    common.ErrInvalidCredentials.Error(),
			extensions: map[string]interface{}{"code": codeUnauthenticated},
		}
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return &resolverError{
			message:    err.Error(),
			extensions: map[string]interface{}{"code": codeUnauthenticated},
		}
	case errors.Is(err, common.ErrUnauthorized):
		return &resolverError{
			message:    common.ErrUnauthorized.Error(),
			extensions: map[string]interface{}{"code": codeNotAuthorized},
		}
	default:
		return &resolverError{
			message:    "internal server error",
			extensions: map[string]interface{}{"code": codeInternal},
		}
	}
}
