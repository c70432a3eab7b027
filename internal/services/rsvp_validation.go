package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"weddingrsvp/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// ValidateSubmission trims and checks a submission. It returns a normalized
// copy, or a *domain.ValidationError listing every rejected field.
func ValidateSubmission(in domain.RSVPSubmission) (*domain.RSVPSubmission, error) {
	out := normalizeSubmission(in)
	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("validate submission: %w", err)
		}
		fields := make([]domain.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, domain.FieldError{
				Field:   fieldPath(fe),
				Message: validationMessage(fe),
			})
		}
		return nil, domain.NewValidationError(fields...)
	}
	return out, nil
}

func normalizeSubmission(in domain.RSVPSubmission) *domain.RSVPSubmission {
	out := in
	out.Name = strings.TrimSpace(in.Name)
	out.Email = strings.TrimSpace(in.Email)
	out.DietaryRestrictions = strings.TrimSpace(in.DietaryRestrictions)
	out.Message = strings.TrimSpace(in.Message)
	if in.AdditionalGuests != nil {
		out.AdditionalGuests = make([]domain.Guest, len(in.AdditionalGuests))
		for i, g := range in.AdditionalGuests {
			out.AdditionalGuests[i] = domain.Guest{
				Name:                strings.TrimSpace(g.Name),
				DietaryRestrictions: strings.TrimSpace(g.DietaryRestrictions),
			}
		}
	}
	return &out
}

// fieldPath drops the root struct name, e.g. "additionalGuests[1].name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("must have at most %s entries", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email"
	}
	return "is invalid"
}
