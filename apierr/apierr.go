// Package apierr defines the failure taxonomy shared by all controllers and
// its mapping onto HTTP responses. Controllers return these; handlers call
// Respond instead of choosing status codes themselves.
package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Kind int

const (
	KindNotFound     Kind = iota + 1 // missing user/product/service/order/cart item
	KindInvalidInput                 // missing required fields, bad values
	KindInvalidState                 // operation not valid for current state (e.g. empty cart)
	KindInternal                     // storage or unexpected failure
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func Internal(err error, msg string) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf returns the kind carried by err, or KindInternal for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func statusCode(k Kind) int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidInput, KindInvalidState:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the JSON error body for err with the status its kind maps to.
func Respond(c *gin.Context, err error) {
	c.JSON(statusCode(KindOf(err)), gin.H{"error": err.Error()})
}
