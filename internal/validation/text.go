package validation

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
)

// MaxTextBytes bounds the text accepted for one infographic
const MaxTextBytes = 1 << 20

// ValidateText rejects text that cannot produce an infographic: blank or
// whitespace-only text, invalid UTF-8, or text over MaxTextBytes.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "please enter some text to generate an infographic")
	}
	if len(text) > MaxTextBytes {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "text is %d bytes, the limit is %d", len(text), MaxTextBytes)
	}
	if !utf8.ValidString(text) {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "text is not valid UTF-8")
	}
	return nil
}
