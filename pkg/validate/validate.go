package validate

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})
	return instance
}

// Struct checks the `validate` tags of a request DTO and returns a readable error.
func Struct(s interface{}) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// IsCurrency reports whether code is an ISO 4217 alphabetic currency code.
func IsCurrency(code string) bool {
	return get().Var(code, "required,iso4217") == nil
}

// IsUUID reports whether id is a canonical UUID, as used for every entity id.
func IsUUID(id string) bool {
	return get().Var(id, "required,uuid") == nil
}
