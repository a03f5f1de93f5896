package canvas

import (
	"fmt"
	"strings"

	apperrors "github.com/ankek/terraform-provider-infographic/internal/errors"
)

// Size is one of the supported surface dimensions
type Size struct {
	Name   string `json:"name" yaml:"name"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

var (
	Standard   = Size{Name: "standard", Width: 800, Height: 600}
	Widescreen = Size{Name: "widescreen", Width: 1280, Height: 720}
)

// String returns the "WxH" form accepted by ParseSize
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Sizes returns the supported sizes, standard first
func Sizes() []Size {
	return []Size{Standard, Widescreen}
}

// ParseSize accepts "800x600", "1280x720" or a preset name.
// An empty string selects the standard size.
func ParseSize(s string) (Size, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Standard, nil
	}
	for _, size := range Sizes() {
		if s == size.Name || s == size.String() {
			return size, nil
		}
	}
	return Size{}, apperrors.New(apperrors.ErrCodeInvalidSize, "unsupported size %q (expected %s or %s)", s, Standard, Widescreen)
}
