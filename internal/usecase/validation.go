package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/xavierca1/console-clientes/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidarNovoCliente(input entity.NovoCliente) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Nome) == "" {
		errors = append(errors, ValidationError{"nome", "is required"})
	} else if len(input.Nome) > 200 {
		errors = append(errors, ValidationError{"nome", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Sobrenome) == "" {
		errors = append(errors, ValidationError{"sobrenome", "is required"})
	} else if len(input.Sobrenome) > 200 {
		errors = append(errors, ValidationError{"sobrenome", "must not exceed 200 characters"})
	}

	// email é opcional
	if strings.TrimSpace(input.Email) != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	return errors
}

func validationMessage(errs []ValidationError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}
