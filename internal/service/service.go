// Package service menggabungkan validasi input, otorisasi dan akses data
// menjadi satu method untuk setiap aksi pengguna.
package service

import (
	"reflect"

	"github.com/db-agama/kajian-manager/internal/config"
	"github.com/db-agama/kajian-manager/internal/repository"
	"github.com/go-playground/locales/id"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	id_translations "github.com/go-playground/validator/v10/translations/id"
)

type Service struct {
	validate   *validator.Validate
	config     *config.Config
	repository *repository.Repository
	translator ut.Translator
}

func NewService(cfg *config.Config, repo *repository.Repository) (*Service, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// pesan error memakai label yang tampil di form, bukan nama field Go
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		if label := field.Tag.Get("label"); label != "" {
			return label
		}
		return field.Name
	})

	id := id.New()
	uni := ut.New(id, id)
	trans, _ := uni.GetTranslator("id")
	if err := id_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Service{
		validate:   validate,
		config:     cfg,
		repository: repo,
		translator: trans,
	}, nil
}
