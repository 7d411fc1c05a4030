package util

import (
	"testing"

	domainerrors "clinic/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	ID   string `validate:"required"`
	Date string `validate:"omitempty,datetime=2006-01-02"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       sampleInput
		wantErr     bool
		wantDetails string
	}{
		{name: "valid", input: sampleInput{ID: "1", Date: "2025-03-10"}},
		{name: "empty optional date", input: sampleInput{ID: "1"}},
		{name: "missing id", input: sampleInput{}, wantErr: true, wantDetails: "ID is required"},
		{name: "bad date", input: sampleInput{ID: "1", Date: "10/03/2025"}, wantErr: true, wantDetails: "Date must use the 2006-01-02 format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
			assert.Contains(t, err.Error(), tt.wantDetails)
		})
	}
}

func TestMean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []int
		want   float64
		ok     bool
	}{
		{name: "empty", values: nil, want: 0, ok: false},
		{name: "single", values: []int{5}, want: 5, ok: true},
		{name: "five and three", values: []int{5, 3}, want: 4, ok: true},
		{name: "fraction", values: []int{5, 4, 4}, want: 13.0 / 3.0, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Mean(tt.values)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
