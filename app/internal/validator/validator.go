package validator

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"backend/cipherhacks-mailer/app/api/client/exception"
	"backend/cipherhacks-mailer/app/api/client/response"
	"backend/cipherhacks-mailer/app/internal/runtime"
)

type IValidator interface {
	Register() (validator.Func, string)
}

type Validators struct {
	v          *validator.Validate
	validators []IValidator
}

func NewValidators(res runtime.Resource) *Validators {
	validators := []IValidator{
		NewNotBlankValidator(),
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &Validators{
		v:          v,
		validators: validators,
	}
}

// jsonFieldName reports fields by their JSON name so details match the request body.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func (vl *Validators) Setup() error {
	for _, v := range vl.validators {
		fnc, tag := v.Register()
		if err := vl.v.RegisterValidation(tag, fnc); err != nil {
			return err
		}
	}
	return nil
}

// Validate returns a 400 echo.HTTPError whose message is the caller-visible body.
// Details name the failing field and tag, never the submitted value.
func (vl *Validators) Validate(requestData any) error {
	err := vl.v.Struct(requestData)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if ok := errors.As(err, &validationErrs); ok {
		return echo.NewHTTPError(
			http.StatusBadRequest,
			response.ToErrorResponse(response.ErrMsgInvalidRequest, getDetails(validationErrs)...),
		).WithInternal(exception.JoinErrors(exception.ErrValidationFailed, err))
	}

	return echo.NewHTTPError(
		http.StatusBadRequest,
		response.ToErrorResponse(response.ErrMsgInvalidRequest),
	).WithInternal(exception.JoinErrors(exception.ErrValidationFailed, err))
}

func getDetails(validationErrs validator.ValidationErrors) (out []response.ErrorDetail) {
	for _, vErr := range validationErrs {
		out = append(out, response.ErrorDetail{
			Key:     vErr.Namespace(),
			Field:   vErr.Field(),
			Message: fmt.Sprintf("Failed on the '%s' tag", vErr.Tag()),
		})
	}

	return out
}

var _ echo.Validator = &Validators{}
