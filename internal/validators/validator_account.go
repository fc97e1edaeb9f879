// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/MKhiriev/go-otp-keeper/models"
)

// Struct field names accepted by Validate to restrict validation.
const (
	FieldID       = "ID"
	FieldIssuer   = "Issuer"
	FieldUsername = "Username"
	FieldSecret   = "Secret"
	FieldFavicon  = "Favicon"
)

// tagTOTPSecret is the custom rule for normalized Base32 TOTP seeds.
const tagTOTPSecret = "totpsecret"

// reBase32Secret matches an upper-case RFC 4648 Base32 string with optional
// trailing padding.
var reBase32Secret = regexp.MustCompile(`^[A-Z2-7]+=*$`)

// AccountValidator validates account models with go-playground/validator
// struct tags and maps failures to the package sentinel errors.
type AccountValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewAccountValidator constructs an [AccountValidator] with English
// messages and the totpsecret rule registered.
func NewAccountValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, _ := uni.GetTranslator("en")
	// default translations only fail on duplicate registration
	_ = enTranslations.RegisterDefaultTranslations(validate, enTrans)

	registerAccountRules(validate, enTrans)

	return &AccountValidator{
		validate:   validate,
		translator: enTrans,
	}
}

//nolint:errcheck // registration only fails for an empty tag
func registerAccountRules(validate *validator.Validate, enTrans ut.Translator) {
	validate.RegisterValidation(tagTOTPSecret, func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return reBase32Secret.MatchString(s)
	})

	validate.RegisterTranslation(tagTOTPSecret, enTrans,
		func(ut ut.Translator) error {
			return ut.Add(tagTOTPSecret, "{0} must be a Base32 TOTP secret", false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(fe.Tag(), fe.Field())
			return t
		},
	)
}

// Validate implements [Validator]. Supported inputs are [models.Account],
// [models.NewAccount] and [models.AccountUpdate] (values or pointers).
// When fields are given only those struct fields are checked.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Account, models.NewAccount:
	case *models.Account:
		if value == nil {
			return ErrUnsupportedType
		}
	case *models.NewAccount:
		if value == nil {
			return ErrUnsupportedType
		}
	case models.AccountUpdate:
		return v.validateUpdate(ctx, value, fields...)
	case *models.AccountUpdate:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUpdate(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}

	return v.validateStruct(ctx, obj, fields...)
}

func (v *AccountValidator) validateUpdate(ctx context.Context, update models.AccountUpdate, fields ...string) error {
	if update.Issuer == nil && update.Username == nil && update.Favicon == nil {
		return ErrNoFieldsToUpdate
	}
	return v.validateStruct(ctx, update, fields...)
}

func (v *AccountValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		for _, f := range fields {
			if !isKnownField(f) {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	errs := make([]error, 0, len(validateErrs))
	for _, fe := range validateErrs {
		errs = append(errs, fmt.Errorf("%w (%s)", fieldError(fe), fe.Translate(v.translator)))
	}
	return errors.Join(errs...)
}

func fieldError(fe validator.FieldError) error {
	switch {
	case fe.Field() == FieldID && fe.Tag() == "required":
		return ErrEmptyID
	case fe.Field() == FieldSecret && fe.Tag() == "required":
		return ErrEmptySecret
	case fe.Field() == FieldSecret && fe.Tag() == tagTOTPSecret:
		return ErrInvalidSecret
	case fe.Field() == FieldFavicon:
		return ErrInvalidFavicon
	case fe.Tag() == "max":
		return ErrFieldTooLong
	default:
		return ErrInvalidField
	}
}

func isKnownField(f string) bool {
	switch f {
	case FieldID, FieldIssuer, FieldUsername, FieldSecret, FieldFavicon:
		return true
	default:
		return false
	}
}
