package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-dashboard/internal/domain"
	apperrors "github.com/trip-dashboard/internal/pkg/errors"
)

func strPtr(s string) *string {
	return &s
}

func TestValidateFilter(t *testing.T) {
	tests := []struct {
		name        string
		query       domain.FilterQuery
		wantErr     bool
		wantDetails []string
	}{
		{name: "empty filter", query: domain.FilterQuery{}},
		{name: "full filter", query: domain.FilterQuery{Start: "2016-01-01", End: "2016-06-30", VendorID: strPtr("2"), PassengerMin: strPtr("1"), PassengerMax: strPtr("3")}},
		{name: "bound above nine", query: domain.FilterQuery{PassengerMax: strPtr("10")}},
		{name: "decimal bound", query: domain.FilterQuery{PassengerMin: strPtr("1.5")}},
		{name: "min greater than max", query: domain.FilterQuery{PassengerMin: strPtr("5"), PassengerMax: strPtr("2")}},
		{name: "start after end", query: domain.FilterQuery{Start: "2016-02-01", End: "2016-01-01"}},
		{name: "free form date", query: domain.FilterQuery{Start: "01/01/2016"}},
		{name: "long vendor", query: domain.FilterQuery{VendorID: strPtr("a-very-long-vendor-identifier-over-32-chars")}},
		{name: "word as bound", query: domain.FilterQuery{PassengerMin: strPtr("two")}, wantErr: true, wantDetails: []string{"passenger_min"}},
		{name: "both bounds not numbers", query: domain.FilterQuery{PassengerMin: strPtr("a"), PassengerMax: strPtr("1,5")}, wantErr: true, wantDetails: []string{"passenger_min", "passenger_max"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilter(tt.query)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "INVALID_FILTER", appErr.Code)
			assert.Equal(t, 400, appErr.StatusCode)
			for _, field := range tt.wantDetails {
				assert.Contains(t, appErr.Details, field)
			}
		})
	}
}
