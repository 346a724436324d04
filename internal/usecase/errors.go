package usecase

import "errors"

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeGateway    = "GATEWAY_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var target *DomainError
	return errors.As(err, &target)
}

type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error { return e.Err }

func IsTechnicalError(err error) bool {
	var target *TechnicalError
	return errors.As(err, &target)
}
