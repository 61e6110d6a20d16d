package errors

import "testing"

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		wantErr  bool
	}{
		{"equal bounds", 1, 1, false},
		{"zero range", 0, 0, false},
		{"normal", 300, 500, false},
		{"inverted", 5, 4, true},
		{"negative min", -1, 4, true},
		{"negative max", 0, -4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange(tt.min, tt.max)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateRange(%d, %d) error = %v, wantErr %v", tt.min, tt.max, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRange) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidRange)
			}
		})
	}
}

func TestValidateSize(t *testing.T) {
	for _, n := range []int{0, -5, 20_000_000} {
		if err := ValidateSize(n); err == nil {
			t.Errorf("ValidateSize(%d) should fail", n)
		}
	}
	if err := ValidateSize(10000); err != nil {
		t.Errorf("ValidateSize(10000) error: %v", err)
	}
}

func TestValidateFormats(t *testing.T) {
	allowed := []string{"dot", "svg", "png"}
	if err := ValidateFormats([]string{"dot", "svg"}, allowed...); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateFormats(nil, allowed...); err != nil {
		t.Errorf("empty formats should be valid: %v", err)
	}
	err := ValidateFormats([]string{"svg", "pdf"}, allowed...)
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT, got %v", err)
	}
}
