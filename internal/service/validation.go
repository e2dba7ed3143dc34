package service

import (
	"errors"

	"github.com/db-agama/kajian-manager/internal/domain"
	"github.com/go-playground/validator/v10"
)

// validateStruct mengembalikan hanya field pertama yang gagal, dalam bentuk
// domain.ValidationError yang sudah diterjemahkan.
func (s *Service) validateStruct(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fe := validationErrors[0]
	return &domain.ValidationError{
		Field:   fe.Field(),
		Message: fe.Translate(s.translator),
	}
}

func invalid(field, message string) error {
	return &domain.ValidationError{Field: field, Message: message}
}
