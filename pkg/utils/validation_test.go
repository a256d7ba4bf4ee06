package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/workoflow/hrms-api/pkg/utils"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"alice.johnson+hr@example.co.uk",
		"a_b-c@sub.domain.org",
	}
	for _, email := range valid {
		assert.True(t, utils.ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"alice@",
		"alice@example",
		"alice example@example.com",
	}
	for _, email := range invalid {
		assert.False(t, utils.ValidateEmail(email), email)
	}
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "hello", utils.SanitizeInput("  hello  "))
	assert.Equal(t, "hello", utils.SanitizeInput("he\x00llo"))
	assert.Equal(t, "line1\nline2", utils.SanitizeInput("line1\nline2"))
	assert.Equal(t, "ab", utils.SanitizeInput("a\x07b"))
}
