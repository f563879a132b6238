package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText_StripsScriptTag(t *testing.T) {
	out := Text("<script>alert(1)</script>Hello")

	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, ">")
	assert.NotContains(t, strings.ToLower(out), "script")
	assert.Contains(t, out, "Hello")
}

func TestText_StripsQuotesAndEscapes(t *testing.T) {
	out := Text(`Robert'); DROP TABLE users;--`)

	assert.NotContains(t, out, "'")
	assert.NotContains(t, out, ";")
}

func TestText_StripsPathTraversal(t *testing.T) {
	assert.Equal(t, "etc/passwd", Text("../../etc/passwd"))
	assert.NotContains(t, Text(`..\windows`), `..\`)
	assert.NotContains(t, Text("$where"), "$")
}

func TestText_StripsRiskyKeywordsCaseInsensitive(t *testing.T) {
	out := Text("JaVaScRiPt alert ONLOAD x onerror y")

	lower := strings.ToLower(out)
	assert.NotContains(t, lower, "javascript")
	assert.NotContains(t, lower, "onload")
	assert.NotContains(t, lower, "onerror")
}

func TestText_IdempotentOnCleanInput(t *testing.T) {
	clean := Text("Hello World 123")
	assert.Equal(t, clean, Text(clean))
}

func TestText_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, "hello", Text("  hello  "))
}

func TestDetectInjection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"script tag", "<script>alert(1)</script>", true},
		{"javascript uri", "javascript:alert(1)", true},
		{"vbscript uri", "VBScript:msgbox(1)", true},
		{"data html uri", "data:text/html,<h1>x</h1>", true},
		{"event handler", `<img src=x onerror=alert(1)>`, true},
		{"event handler spaced", `onclick = "do()"`, true},
		{"iframe", "<IFRAME src='x'>", true},
		{"object", "<object data='x'>", true},
		{"embed", "<embed src='x'>", true},
		{"eval call", "eval(document.cookie)", true},
		{"css expression", "width:expression(alert(1))", true},
		{"plain text", "plain text", false},
		{"email", "a@b.com", false},
		{"innocent word", "prescription drugs", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectInjection(tc.input))
		})
	}
}

func TestCleanInjection_RemovesMatches(t *testing.T) {
	out := CleanInjection("safe javascript:alert(1) text")
	assert.False(t, DetectInjection(out))
	assert.Contains(t, out, "safe")
	assert.Contains(t, out, "text")
}

func TestMap_SanitizesStringsRecursively(t *testing.T) {
	in := map[string]any{
		"name":  "<b>Ana</b>",
		"count": 3,
		"nested": map[string]any{
			"bio": "hello <script>x</script>",
		},
	}

	out := Map(in)

	assert.Equal(t, "bAna/b", out["name"])
	assert.Equal(t, 3, out["count"])
	nested := out["nested"].(map[string]any)
	assert.NotContains(t, nested["bio"], "<")

	// input untouched
	assert.Equal(t, "<b>Ana</b>", in["name"])
}
