package validation_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/validation"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{" 42 ", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := validation.ValidateID(tt.in)
			if tt.wantErr {
				if !errors.Is(err, validation.ErrInvalidID) {
					t.Errorf("Expected ErrInvalidID, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ValidateID(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	t.Run("plain date", func(t *testing.T) {
		got, err := validation.ParseDate("2025-03-31")
		if err != nil || !got.Equal(want) {
			t.Errorf("ParseDate() = %v, %v; want %v", got, err, want)
		}
	})

	t.Run("RFC3339 timestamp is truncated to its UTC date", func(t *testing.T) {
		got, err := validation.ParseDate("2025-03-31T18:30:00Z")
		if err != nil || !got.Equal(want) {
			t.Errorf("ParseDate() = %v, %v; want %v", got, err, want)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := validation.ParseDate("31-03-2025")
		if !errors.Is(err, validation.ErrInvalidDate) {
			t.Errorf("Expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestValidateDateRange(t *testing.T) {
	early := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	if err := validation.ValidateDateRange(early, late); err != nil {
		t.Errorf("Expected valid range, got %v", err)
	}
	if err := validation.ValidateDateRange(early, early); err != nil {
		t.Errorf("Expected single-day range to be valid, got %v", err)
	}
	if err := validation.ValidateDateRange(late, early); !errors.Is(err, validation.ErrInvalidDateRange) {
		t.Errorf("Expected ErrInvalidDateRange, got %v", err)
	}
}

// TestError_Message tests that field errors render in a stable order.
//
// WHY: CLI output and logs include the message; map iteration order would
// otherwise make it change between runs.
func TestError_Message(t *testing.T) {
	err := &validation.Error{Fields: map[string]string{
		"quantityPurchased": "quantity must be positive",
		"couponRate":        "coupon rate cannot be negative",
	}}

	msg := err.Error()

	if strings.Index(msg, "couponRate") > strings.Index(msg, "quantityPurchased") {
		t.Errorf("Expected fields sorted by name, got %q", msg)
	}
}
