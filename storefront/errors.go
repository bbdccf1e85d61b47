package storefront

import (
	"errors"
	"fmt"
	"strings"

	"modularcloset_server/structs"
)

var (
	// ErrNotFound marks a null entity returned by a successful API call.
	// Handlers translate it to a genuine 404; anything else upstream-shaped
	// renders a retry-style error instead.
	ErrNotFound = errors.New("not found")

	// ErrUpstream wraps transport and GraphQL failures from the platform.
	ErrUpstream = errors.New("storefront upstream error")
)

// UserErrorsError carries user-level errors returned by a cart mutation.
// The mutation is treated as failed as a whole.
type UserErrorsError struct {
	Mutation string
	Errors   []structs.UserError
}

func (e *UserErrorsError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ue := range e.Errors {
		msgs = append(msgs, ue.Message)
	}
	return fmt.Sprintf("%s returned user errors: %s", e.Mutation, strings.Join(msgs, "; "))
}

// NewUserErrorsError returns nil when the mutation reported no user errors.
func NewUserErrorsError(mutation string, userErrors []structs.UserError) error {
	if len(userErrors) == 0 {
		return nil
	}
	return &UserErrorsError{Mutation: mutation, Errors: userErrors}
}
