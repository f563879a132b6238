package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a@b.com", true},
		{"user.name-x_y@sub.example.org", true},
		{"no-at-sign", false},
		{"two@@b.com", false},
		{"a@b", false},
		{"a@b.toolongtld", false},
		{"spaces in@b.com", false},
		{"", false},
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.want, Email(tc.input), "input %q", tc.input)
	}
}

func TestEmail_LengthCap(t *testing.T) {
	long := strings.Repeat("a", 95) + "@b.com"
	assert.Greater(t, len(long), maxEmailLength)
	assert.False(t, Email(long))
}

func TestPassword_Strict(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"all classes", "StrongP@ss1", true},
		{"too short", "St@1ngx", false},
		{"no uppercase", "strongp@ss1", false},
		{"no lowercase", "STRONGP@SS1", false},
		{"no digit", "StrongP@ssword", false},
		{"no special", "StrongPass1", false},
		{"too long", strings.Repeat("Aa1!", 33), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Password(tc.input, PolicyStrict))
		})
	}
}

func TestPassword_Relaxed(t *testing.T) {
	assert.True(t, Password("simple", PolicyRelaxed))
	assert.True(t, Password("123456", PolicyRelaxed))
	assert.False(t, Password("short", PolicyRelaxed))
}

func TestDisplayName(t *testing.T) {
	assert.True(t, DisplayName("Ana"))
	assert.True(t, DisplayName(strings.Repeat("x", 50)))
	assert.False(t, DisplayName("A"))
	assert.False(t, DisplayName(strings.Repeat("x", 51)))
	assert.False(t, DisplayName(""))
}

func TestUsername(t *testing.T) {
	assert.True(t, Username("user_123"))
	assert.True(t, Username("a-b"))
	assert.False(t, Username("ab"))
	assert.False(t, Username("has space"))
	assert.False(t, Username(strings.Repeat("x", 21)))
	assert.False(t, Username("wíth-àccents"))
}
