package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SignupInput holds the fields required to create a user or moderator account.
type SignupInput struct {
	FirstName string `json:"firstName" validate:"required,min=3,max=30"`
	LastName  string `json:"lastName" validate:"required,min=3,max=30"`
	Username  string `json:"username" validate:"required,min=8,max=30"`
	Email     string `json:"email" validate:"required,max=254,email"`
	Password  string `json:"password" validate:"required,min=6,max=15"`
}

// LoginInput holds login credentials.
type LoginInput struct {
	Username string `json:"username" validate:"required,min=8,max=30"`
	Password string `json:"password" validate:"required,min=6,max=15"`
}

// UpdateInput holds the profile fields to change. Empty fields are left as they are.
type UpdateInput struct {
	FirstName string `json:"firstName" validate:"omitempty,min=3,max=30"`
	LastName  string `json:"lastName" validate:"omitempty,min=3,max=30"`
	Username  string `json:"username" validate:"omitempty,min=8,max=30"`
	Email     string `json:"email" validate:"omitempty,max=254,email"`
	Password  string `json:"password" validate:"omitempty,min=6,max=15"`
}

// PostInput holds the fields of a new post.
type PostInput struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required,max=5000"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput checks in against its validate tags and returns a
// *ValidationError describing the first failing field.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	return &ValidationError{Field: fe.Field(), Message: validationMessage(fe)}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", fe.Field())
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%q must be a valid email", fe.Field())
	default:
		return fmt.Sprintf("%q is invalid", fe.Field())
	}
}
