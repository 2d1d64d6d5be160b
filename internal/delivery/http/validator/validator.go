// Package validator adapts go-playground/validator to Echo and translates
// failures into the structured validation error the error handler renders.
package validator

import (
	"regexp"
	"strings"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/util"

	"github.com/go-playground/validator/v10"
)

var (
	telegramIDPattern   = regexp.MustCompile(`^-?\d{1,20}$`)
	nationalCodePattern = regexp.MustCompile(`^\d{10,14}$`)
	phonePattern        = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// EchoValidator implements echo.Validator on top of go-playground/validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates the request validator with the custom marketplace rules
// registered.
func New() *EchoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration never fails for non-empty tags on plain funcs.
	_ = v.RegisterValidation("slugtoken", func(fl validator.FieldLevel) bool {
		return util.ValidSlugToken(fl.Field().String())
	})
	_ = v.RegisterValidation("telegramid", func(fl validator.FieldLevel) bool {
		return telegramIDPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("nationalcode", func(fl validator.FieldLevel) bool {
		return nationalCodePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &EchoValidator{validate: v}
}

// Validate implements echo.Validator.
func (ev *EchoValidator) Validate(i any) error {
	err := ev.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrBadRequest.WithDetails(err.Error())
	}

	fields := make([]domainerrors.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fieldPath(fieldErr.Namespace()),
			Message: ruleMessage(fieldErr),
		})
	}

	return domainerrors.NewValidationError(fields)
}

// fieldPath strips the root struct name and lower-cases the leading letter
// of each segment so paths read like the JSON payload.
func fieldPath(namespace string) string {
	segments := strings.Split(namespace, ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		segments[i] = strings.ToLower(segment[:1]) + segment[1:]
	}

	return strings.Join(segments, ".")
}

func ruleMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fieldErr.Param()
	case "max":
		return "must be at most " + fieldErr.Param()
	case "oneof":
		return "must be one of: " + fieldErr.Param()
	case "url":
		return "must be a valid URL"
	case "slugtoken":
		return "must be a lowercase hyphenated slug"
	case "telegramid":
		return "must be a valid Telegram identifier"
	case "nationalcode":
		return "must be a valid national code"
	case "phone":
		return "must be a valid phone number"
	default:
		return "failed on rule: " + fieldErr.Tag()
	}
}
