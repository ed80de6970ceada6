package errors

import (
	"strings"

	"github.com/hashicorp/go-multierror"
)

type APIError string

func (e APIError) Error() string {
	return string(e)
}

const (
	ErrUserNotFound     APIError = "usuario no encontrado"
	ErrItemNotFound     APIError = "item no encontrado"
	ErrEmailExists      APIError = "ya existe un usuario con ese email"
	ErrNoFieldsToUpdate APIError = "no se proporcionaron campos válidos para actualizar"
)

// ValidationError carries every rule a request violated, in the order the
// fields were checked. Handlers render Errors verbatim.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// FromMultierror flattens an accumulated multierror into a ValidationError.
// Returns nil when merr holds no errors.
func FromMultierror(merr *multierror.Error) error {
	if merr == nil || len(merr.Errors) == 0 {
		return nil
	}

	verr := &ValidationError{Errors: make([]string, 0, len(merr.Errors))}
	for _, err := range merr.Errors {
		verr.Errors = append(verr.Errors, err.Error())
	}

	return verr
}
