package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnknownPalette, "Unknown palette %q", "neon")

	if err.Code != ErrCodeUnknownPalette {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnknownPalette)
	}

	if err.Message != `Unknown palette "neon"` {
		t.Errorf("Message = %v, want %v", err.Message, `Unknown palette "neon"`)
	}

	expected := `UNKNOWN_PALETTE: Unknown palette "neon"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeOutputWrite, cause, "Could not write to file %q", "/root/out.png")

	if err.Code != ErrCodeOutputWrite {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeOutputWrite)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInsufficientColors, "test"),
			code:     ErrCodeInsufficientColors,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInsufficientColors, "test"),
			code:     ErrCodeDiagramFailure,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeOutputWrite, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeOutputWrite,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("paint: %w", New(ErrCodeUnknownEffect, "inner")),
			code:     ErrCodeUnknownEffect,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeUnknownListTarget, "test"), ErrCodeUnknownListTarget},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeUnknownPalette, `Unknown palette "x"`),
			expected: `Unknown palette "x"`,
		},
		{
			name:     "wrapped cause",
			err:      Wrap(ErrCodeOutputWrite, errors.New("no such directory"), `Could not write to file "a/b.png"`),
			expected: `Could not write to file "a/b.png": no such directory`,
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
