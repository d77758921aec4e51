package validation

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const maxURLLength = 2048

var (
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	authorRegex   = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
)

// GenerateQRCodeRequest is the body of POST /api/qr/generate. Validate
// applies defaults in place, so callers read the fields back after a
// successful call.
type GenerateQRCodeRequest struct {
	TargetURL string `json:"target_url"`
	Author    string `json:"author"`
	FgColor   string `json:"fg_color"`
	BgColor   string `json:"bg_color"`
}

// Validate checks the request and normalizes it: author is trimmed,
// missing colors default to black on white. The returned error message
// is client-facing.
func (r *GenerateQRCodeRequest) Validate() error {
	if r.TargetURL == "" {
		return errors.New("URL is required")
	}
	if len(r.TargetURL) > maxURLLength {
		return fmt.Errorf("URL must be less than %d characters", maxURLLength)
	}

	parsed, err := url.Parse(r.TargetURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("Please enter a valid URL (e.g., https://example.com)")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("URL must start with http:// or https://")
	}

	r.Author = strings.TrimSpace(r.Author)
	if r.Author == "" {
		return errors.New("Author is required")
	}
	if len(r.Author) < 2 {
		return errors.New("Author must be at least 2 characters")
	}
	if len(r.Author) > 30 {
		return errors.New("Author must be at most 30 characters")
	}
	if !authorRegex.MatchString(r.Author) {
		return errors.New("Author can only contain letters, numbers, and spaces")
	}

	if r.FgColor == "" {
		r.FgColor = "#000000"
	} else if !hexColorRegex.MatchString(r.FgColor) {
		return errors.New("Foreground color must be a valid hex color (e.g., #000000)")
	}

	if r.BgColor == "" {
		r.BgColor = "#FFFFFF"
	} else if !hexColorRegex.MatchString(r.BgColor) {
		return errors.New("Background color must be a valid hex color (e.g., #FFFFFF)")
	}

	return nil
}

// AdminAuthRequest is the body of POST /api/admin/auth.
type AdminAuthRequest struct {
	Password string `json:"password"`
}

func (r *AdminAuthRequest) Validate() error {
	if r.Password == "" {
		return errors.New("Password is required")
	}
	return nil
}

// IsValidShortCode bounds the path parameter before any storage lookup.
func IsValidShortCode(code string) bool {
	return len(code) >= 1 && len(code) <= 20
}
