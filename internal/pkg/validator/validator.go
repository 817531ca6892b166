package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/trip-dashboard/internal/domain"
	apperrors "github.com/trip-dashboard/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// ValidateFilter проверяет только то, что границы пассажиров - числа.
// Остальные значения уходят в API поездок как есть.
func ValidateFilter(q domain.FilterQuery) error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.ErrInvalidFilter.WithMessage(err.Error())
	}

	fields := make([]string, 0, len(verrs))
	details := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
		details[fe.Field()] = fe.Tag()
	}

	return apperrors.ErrInvalidFilter.
		WithMessage("filter fields must be numbers: " + strings.Join(fields, ", ")).
		WithDetails(details)
}
