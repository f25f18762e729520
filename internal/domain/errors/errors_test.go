package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	if !stdErrors.Is(ErrNotFound, ErrNotFound) {
		t.Fatal("expected ErrNotFound to match itself")
	}
	wrapped := fmt.Errorf("load order: %w", ErrNotFound)
	if !stdErrors.Is(wrapped, ErrNotFound) {
		t.Fatal("expected wrapped ErrNotFound to match")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	ve := &ValidationError{}
	if ve.HasErrors() {
		t.Fatal("expected fresh validation error to carry no fields")
	}
	if ve.Error() != "validation failed" {
		t.Fatalf("unexpected empty message %q", ve.Error())
	}

	ve.Add("name", "is required")
	ve.Add("phone", "must contain at least 10 digits")
	if !ve.HasErrors() {
		t.Fatal("expected violations after Add")
	}

	want := "name: is required; phone: must contain at least 10 digits"
	if ve.Error() != want {
		t.Fatalf("expected %q, got %q", want, ve.Error())
	}
}

func TestNewValidation(t *testing.T) {
	err := NewValidation("deliveryMethod", "must be delivery or meetup")
	if len(err.Fields) != 1 {
		t.Fatalf("expected one field, got %d", len(err.Fields))
	}
	if err.Fields[0].Field != "deliveryMethod" {
		t.Fatalf("unexpected field %q", err.Fields[0].Field)
	}
}

func TestIsValidation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"direct", NewValidation("name", "is required"), true},
		{"wrapped", fmt.Errorf("submit: %w", NewValidation("name", "is required")), true},
		{"sentinel", ErrNotFound, false},
		{"plain", stdErrors.New("boom"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidation(tc.err); got != tc.want {
				t.Fatalf("IsValidation(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
