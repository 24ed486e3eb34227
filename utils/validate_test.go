package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("guide@example.com"))
	assert.True(t, ValidEmail("a.b+c@sub.domain.org"))

	assert.False(t, ValidEmail(""))
	assert.False(t, ValidEmail("no-at-sign"))
	assert.False(t, ValidEmail("missing@tld"))
	assert.False(t, ValidEmail("spaces in@mail.com"))
	assert.False(t, ValidEmail("@example.com"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("0712345678"))
	assert.True(t, ValidPhone("0987654321"))

	assert.False(t, ValidPhone(""))
	assert.False(t, ValidPhone("0812345678"), "prefix must be 07 or 09")
	assert.False(t, ValidPhone("071234567"), "too short")
	assert.False(t, ValidPhone("07123456789"), "too long")
	assert.False(t, ValidPhone("071234567a"))
	assert.False(t, ValidPhone("+0712345678"))
}

func TestStrongPassword(t *testing.T) {
	assert.True(t, StrongPassword("Aa1@bc"))
	assert.True(t, StrongPassword("Str0ng&Pass"))

	assert.False(t, StrongPassword(""), "empty")
	assert.False(t, StrongPassword("Aa1@b"), "shorter than 6")
	assert.False(t, StrongPassword("aa1@bc"), "no uppercase")
	assert.False(t, StrongPassword("AA1@BC"), "no lowercase")
	assert.False(t, StrongPassword("Aaa@bc"), "no digit")
	assert.False(t, StrongPassword("Aa1bcd"), "no special")
	assert.False(t, StrongPassword("Aa1@b c"), "space not allowed")
	assert.False(t, StrongPassword("Aa1#bcd"), "# outside allowed specials")
}
