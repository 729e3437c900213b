package errors

import (
	"fmt"
	"testing"
)

func TestScanError_Error(t *testing.T) {
	err := &ScanError{
		Code:    ErrNotFound,
		Message: "input not found: modules.json",
	}

	expected := "NOT_FOUND: input not found: modules.json"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewInvalidInput(t *testing.T) {
	err := NewInvalidInput("/tmp/nope is not a directory")

	if err.Code != ErrInvalidInput {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidInput)
	}
	if err.Message != "/tmp/nope is not a directory" {
		t.Errorf("Message = %q, want %q", err.Message, "/tmp/nope is not a directory")
	}
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("modules.json")

	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Message != "input not found: modules.json" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestNewParse(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	err := NewParse("malformed exchange file", cause)

	if err.Code != ErrParse {
		t.Errorf("Code = %q, want %q", err.Code, ErrParse)
	}
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
}

func TestNewInternal(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewInternal(cause)

	if err.Code != ErrInternal {
		t.Errorf("Code = %q, want %q", err.Code, ErrInternal)
	}
	if err.Message != "disk full" {
		t.Errorf("Message = %q, want %q", err.Message, "disk full")
	}
}

func TestNewInternal_NilError(t *testing.T) {
	err := NewInternal(nil)

	if err.Message != "internal error" {
		t.Errorf("Message = %q, want %q", err.Message, "internal error")
	}
}

func TestIs(t *testing.T) {
	err := NewNotFound("x")

	if !Is(err, ErrNotFound) {
		t.Error("Is(err, ErrNotFound) = false, want true")
	}
	if Is(err, ErrParse) {
		t.Error("Is(err, ErrParse) = true, want false")
	}
	if Is(fmt.Errorf("plain"), ErrNotFound) {
		t.Error("Is(plain error, ErrNotFound) = true, want false")
	}
}
