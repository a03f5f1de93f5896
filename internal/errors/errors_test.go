package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "text is %s", "blank")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}
	if err.Message != "text is blank" {
		t.Errorf("Message = %v, want %v", err.Message, "text is blank")
	}
	if got, want := err.Error(), "INVALID_INPUT: text is blank"; got != want {
		t.Errorf("Error() = %v, want %v", got, want)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "failed to fetch text")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap() did not return the cause")
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
			err:      New(ErrCodeBusy, "generation in progress"),
			code:     ErrCodeBusy,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeBusy, "generation in progress"),
			code:     ErrCodeNotReady,
			expected: false,
		},
		{
			name:     "wrapped by fmt.Errorf",
			err:      fmt.Errorf("render: %w", New(ErrCodeUnsupported, "svg")),
			code:     ErrCodeUnsupported,
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
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
	if got := GetCode(New(ErrCodeInvalidSize, "x")); got != ErrCodeInvalidSize {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInvalidSize)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeInvalidInput, "please enter some text"), "please enter some text"},
		{"wrapped coded", Wrap(ErrCodeNetwork, New(ErrCodeInvalidSource, "bad url"), "fetch failed"), "fetch failed: bad url"},
		{"wrapped plain", Wrap(ErrCodeNetwork, errors.New("timeout"), "fetch failed"), "fetch failed: timeout"},
		{"plain", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
