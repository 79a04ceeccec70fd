package errors

import (
	"math"
	"testing"
)

func TestValidateDatasetID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "sales", false},
		{"valid numeric", "1", false},
		{"valid with spaces", "q1 2024", false},
		{"valid unicode", "ventes-été", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatasetID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDatasetID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateDatasetID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateDimension(t *testing.T) {
	if err := ValidateDimension("width", 0); err != nil {
		t.Errorf("ValidateDimension(0) error = %v, want nil", err)
	}
	if err := ValidateDimension("width", 400); err != nil {
		t.Errorf("ValidateDimension(400) error = %v, want nil", err)
	}
	if err := ValidateDimension("width", -1); err == nil {
		t.Error("ValidateDimension(-1) should fail")
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		wantErr  bool
	}{
		{"ordinary", 0, 10, false},
		{"negative", -5, -1, false},
		{"degenerate", 3, 3, false},
		{"reversed", 10, 0, true},
		{"nan", math.NaN(), 1, true},
		{"inf", 0, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange(tt.min, tt.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRange(%v, %v) error = %v, wantErr %v", tt.min, tt.max, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRange) {
				t.Errorf("ValidateRange code = %v, want %v", GetCode(err), ErrCodeInvalidRange)
			}
		})
	}
}
