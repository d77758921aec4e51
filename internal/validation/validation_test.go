package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateQRCodeRequest_Validate(t *testing.T) {
	valid := func() GenerateQRCodeRequest {
		return GenerateQRCodeRequest{
			TargetURL: "https://example.com",
			Author:    "John Doe",
		}
	}

	t.Run("Valid Request Applies Defaults", func(t *testing.T) {
		req := valid()
		err := req.Validate()
		assert.NoError(t, err)
		assert.Equal(t, "#000000", req.FgColor)
		assert.Equal(t, "#FFFFFF", req.BgColor)
	})

	t.Run("Explicit Colors Kept", func(t *testing.T) {
		req := valid()
		req.FgColor = "#abcdef"
		req.BgColor = "#123456"
		assert.NoError(t, req.Validate())
		assert.Equal(t, "#abcdef", req.FgColor)
		assert.Equal(t, "#123456", req.BgColor)
	})

	t.Run("Missing URL", func(t *testing.T) {
		req := valid()
		req.TargetURL = ""
		assert.EqualError(t, req.Validate(), "URL is required")
	})

	t.Run("URL Too Long", func(t *testing.T) {
		req := valid()
		req.TargetURL = "https://example.com/" + strings.Repeat("a", 2048)
		assert.EqualError(t, req.Validate(), "URL must be less than 2048 characters")
	})

	t.Run("URL Without Scheme", func(t *testing.T) {
		req := valid()
		req.TargetURL = "example.com"
		assert.EqualError(t, req.Validate(), "Please enter a valid URL (e.g., https://example.com)")
	})

	t.Run("URL With Empty Host", func(t *testing.T) {
		req := valid()
		req.TargetURL = "https://"
		assert.EqualError(t, req.Validate(), "Please enter a valid URL (e.g., https://example.com)")
	})

	t.Run("Non-HTTP Scheme", func(t *testing.T) {
		for _, u := range []string{"ftp://example.com", "javascript://alert(1)"} {
			req := valid()
			req.TargetURL = u
			assert.EqualError(t, req.Validate(), "URL must start with http:// or https://")
		}
	})

	t.Run("URL With Query And Fragment", func(t *testing.T) {
		req := valid()
		req.TargetURL = "https://example.com/path?foo=bar&baz=qux#section"
		assert.NoError(t, req.Validate())
	})

	t.Run("Author Required", func(t *testing.T) {
		req := valid()
		req.Author = "   "
		assert.EqualError(t, req.Validate(), "Author is required")
	})

	t.Run("Author Too Short", func(t *testing.T) {
		req := valid()
		req.Author = "J"
		assert.EqualError(t, req.Validate(), "Author must be at least 2 characters")
	})

	t.Run("Author Too Long", func(t *testing.T) {
		req := valid()
		req.Author = strings.Repeat("a", 31)
		assert.EqualError(t, req.Validate(), "Author must be at most 30 characters")
	})

	t.Run("Author Invalid Characters", func(t *testing.T) {
		req := valid()
		req.Author = "John <script>"
		assert.EqualError(t, req.Validate(), "Author can only contain letters, numbers, and spaces")
	})

	t.Run("Author Is Trimmed", func(t *testing.T) {
		req := valid()
		req.Author = "  John Doe  "
		assert.NoError(t, req.Validate())
		assert.Equal(t, "John Doe", req.Author)
	})

	t.Run("Invalid Foreground Color", func(t *testing.T) {
		req := valid()
		req.FgColor = "red"
		assert.EqualError(t, req.Validate(), "Foreground color must be a valid hex color (e.g., #000000)")
	})

	t.Run("Invalid Background Color", func(t *testing.T) {
		for _, c := range []string{"#FFF", "#GGGGGG", "FFFFFF", "#1234567"} {
			req := valid()
			req.BgColor = c
			assert.EqualError(t, req.Validate(), "Background color must be a valid hex color (e.g., #FFFFFF)")
		}
	})
}

func TestAdminAuthRequest_Validate(t *testing.T) {
	t.Run("Password Required", func(t *testing.T) {
		req := AdminAuthRequest{}
		assert.EqualError(t, req.Validate(), "Password is required")
	})

	t.Run("Valid", func(t *testing.T) {
		req := AdminAuthRequest{Password: "secret"}
		assert.NoError(t, req.Validate())
	})
}

func TestIsValidShortCode(t *testing.T) {
	assert.True(t, IsValidShortCode("a"))
	assert.True(t, IsValidShortCode("abc12345"))
	assert.True(t, IsValidShortCode(strings.Repeat("a", 20)))
	assert.False(t, IsValidShortCode(""))
	assert.False(t, IsValidShortCode(strings.Repeat("a", 21)))
}
