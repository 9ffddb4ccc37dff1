// Package errors classifies failures so the HTTP layer, the interaction
// hooks and the CLI can react to them without inspecting error text.
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError is reported for a nil error.
	CategoryNoError Category = iota
	// CategoryDataError marks invalid user input, such as a malformed
	// address or a non-positive amount.
	CategoryDataError
	// CategoryUnauthorized marks a missing or invalid access token.
	CategoryUnauthorized
	// CategoryForbidden marks an operation the wallet declined to sign.
	CategoryForbidden
	// CategoryResourceNotFound marks a post, token or transaction that does not exist.
	CategoryResourceNotFound
	// CategoryNotSupported marks an operation on a contract that is not
	// deployed on the active network.
	CategoryNotSupported
	// CategoryDependencyFailure marks a failing chain RPC node.
	CategoryDependencyFailure
	// CategoryGeneralError marks anything unexpected.
	CategoryGeneralError
)

var categoryNames = map[Category]string{
	CategoryNoError:           "none",
	CategoryDataError:         "invalid_input",
	CategoryUnauthorized:      "unauthorized",
	CategoryForbidden:         "rejected",
	CategoryResourceNotFound:  "not_found",
	CategoryNotSupported:      "unavailable",
	CategoryDependencyFailure: "network",
	CategoryGeneralError:      "internal",
}

var categoryStatus = map[Category]int{
	CategoryDataError:         http.StatusBadRequest,
	CategoryUnauthorized:      http.StatusUnauthorized,
	CategoryForbidden:         http.StatusForbidden,
	CategoryResourceNotFound:  http.StatusNotFound,
	CategoryNotSupported:      http.StatusNotImplemented,
	CategoryDependencyFailure: http.StatusBadGateway,
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryGeneralError]
}

// ServiceError carries a category and a message safe to show to the user.
// Err is the cause and is only logged.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

func (err ServiceError) Unwrap() error {
	return err.Err
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	if status, ok := categoryStatus[err.Category]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	return err != nil && CategoryOf(err) == cat
}

// CategoryOf returns the category of the first ServiceError in err's chain,
// or CategoryGeneralError when there is none.
func CategoryOf(err error) Category {
	if err == nil {
		return CategoryNoError
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Category
	}
	return CategoryGeneralError
}

// MessageOf returns the user facing message of err.
func MessageOf(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return err.Error()
}

func newError(cat Category, err error, message string) error {
	if err == nil {
		err = errors.New(cat.String() + ": " + message)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError hides err behind "Internal Server Error".
func GeneralError(err error) error {
	return newError(CategoryGeneralError, err, "Internal Server Error")
}

// ResourceNotFoundError reports a missing post, token or transaction.
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, message)
}

// BadRequestError reports invalid input.
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, message)
}

// ConfigurationError reports an operation targeting a contract that has no
// address on the active network.
func ConfigurationError(err error, message string) error {
	return newError(CategoryNotSupported, err, message)
}

// UserRejectedError reports a wallet that declined to sign.
func UserRejectedError(err error, message string) error {
	return newError(CategoryForbidden, err, message)
}

// NetworkError reports transport and read failures against the chain node.
func NetworkError(err error, message string) error {
	return newError(CategoryDependencyFailure, err, message)
}

// UnAuthorizedError reports a missing or invalid access token.
func UnAuthorizedError(err error, message string) error {
	return newError(CategoryUnauthorized, err, message)
}
