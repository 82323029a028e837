package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"concierge/pkg/utils"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so messages match request bodies.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateRequest runs struct tag validation and reports the first failing
// field as a utils.FieldError.
func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return utils.NewFieldError(fe.Field(), "is required")
	case "email":
		return utils.NewFieldError(fe.Field(), "must be a valid email address")
	case "gt":
		return utils.NewFieldError(fe.Field(), "must be greater than "+fe.Param())
	default:
		return utils.NewFieldError(fe.Field(), "failed "+fe.Tag()+" validation")
	}
}

// storageErr passes domain errors through and marks everything else as a
// database failure.
func storageErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, utils.ErrInvalidInput),
		errors.Is(err, utils.ErrInvalidTransition),
		errors.Is(err, utils.ErrDatabaseError),
		utils.IsNotFound(err):
		return err
	default:
		return utils.DatabaseError(err)
	}
}
