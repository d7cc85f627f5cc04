package validation

import (
	"fmt"
	"regexp"

	"github.com/breadit-dev/breadit/shared/api"
	"github.com/go-playground/validator/v10"
)

const UsernameField = "name"

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// UsernameFunc validates raw form input and returns the request to send.
type UsernameFunc func(raw string) (api.UsernameRequest, FieldErrors)

type UsernameValidator struct {
	validate *validator.Validate
	rules    string
	minLen   int
	maxLen   int
}

func NewUsernameValidator(minLen, maxLen int) *UsernameValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// RegisterValidation only fails on empty tag names or builtin collisions
	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return &UsernameValidator{
		validate: v,
		rules:    fmt.Sprintf("required,min=%d,max=%d,username", minLen, maxLen),
		minLen:   minLen,
		maxLen:   maxLen,
	}
}

// Validate checks raw against the length bounds and the allowed alphabet
// (letters, digits, underscore).
func (v *UsernameValidator) Validate(raw string) (api.UsernameRequest, FieldErrors) {
	errs := make(FieldErrors)

	err := v.validate.Var(raw, v.rules)
	if err == nil {
		return api.UsernameRequest{Name: raw}, nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		errs.Add(UsernameField, "Invalid username")
		return api.UsernameRequest{}, errs
	}

	switch validationErrs[0].Tag() {
	case "required":
		errs.Add(UsernameField, "Username is required")
	case "min":
		errs.Add(UsernameField, fmt.Sprintf("Username must be at least %d characters", v.minLen))
	case "max":
		errs.Add(UsernameField, fmt.Sprintf("Username must be at most %d characters", v.maxLen))
	default:
		errs.Add(UsernameField, "Username can only contain letters, numbers and underscores")
	}
	return api.UsernameRequest{}, errs
}

// Func adapts the validator to the UsernameFunc signature.
func (v *UsernameValidator) Func() UsernameFunc {
	return v.Validate
}
