package rest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clockInput struct {
	Start string `json:"startTime" validate:"omitempty,clock"`
	End   string `form:"end_time" validate:"required,clock"`
}

func TestNewValidator_Clock(t *testing.T) {
	testCases := []struct {
		name   string
		input  clockInput
		expect string
	}{
		{"valid times", clockInput{Start: "07:45", End: "23:59"}, ""},
		{"empty optional time", clockInput{End: "00:00"}, ""},
		{"twelve hour text", clockInput{Start: "7pm", End: "10:00"}, "startTime must be a HH:MM time"},
		{"hour out of range", clockInput{End: "25:00"}, "end_time must be a HH:MM time"},
		{"missing required time", clockInput{}, "end_time is required"},
	}

	v := NewValidator()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.input)

			if tc.expect == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.expect, ValidationDetails(err))
		})
	}
}
