// FILE: lixenwraith/disklog/sanitizer/sanitizer_test.go
package sanitizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizer(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		preset   PolicyPreset
		expected string
	}{
		{
			name:     "raw passes through",
			input:    "hello\x00world\n",
			preset:   PolicyRaw,
			expected: "hello\x00world\n",
		},
		{
			name:     "csv replaces line breaks",
			input:    "first\nsecond",
			preset:   PolicyCSV,
			expected: "first <br> second",
		},
		{
			name:     "csv drops carriage return",
			input:    "first\r\nsecond",
			preset:   PolicyCSV,
			expected: "first <br> second",
		},
		{
			name:     "csv hex encodes null byte",
			input:    "test\x00data",
			preset:   PolicyCSV,
			expected: "test<00>data",
		},
		{
			name:     "txt hex encodes control chars",
			input:    "bell\x07tab\x09",
			preset:   PolicyTxt,
			expected: "bell<07>tab<09>",
		},
		{
			name:     "txt preserves printable",
			input:    "Hello World 123!@#",
			preset:   PolicyTxt,
			expected: "Hello World 123!@#",
		},
		{
			name:     "csv preserves UTF-8",
			input:    "Hello 世界 ✓",
			preset:   PolicyCSV,
			expected: "Hello 世界 ✓",
		},
		{
			name:     "hex encode multi-byte control",
			input:    "line1\u0085line2",
			preset:   PolicyCSV,
			expected: "line1<c285>line2",
		},
		{
			name:     "unknown preset is ignored",
			input:    "a\nb",
			preset:   PolicyPreset("json"),
			expected: "a\nb",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := New().Policy(tc.preset)
			assert.Equal(t, tc.expected, s.Sanitize(tc.input))
		})
	}
}

func TestCustomRules(t *testing.T) {
	t.Run("strip control", func(t *testing.T) {
		s := New().Rule(FilterControl, TransformStrip)
		assert.Equal(t, "cleantxt", s.Sanitize("clean\x00\x07\ntxt"))
	})

	t.Run("first rule wins", func(t *testing.T) {
		s := New().
			Rule(FilterLineBreak, TransformStrip).
			Policy(PolicyCSV)
		assert.Equal(t, "ab", s.Sanitize("a\nb"))
	})

	t.Run("combined filter mask", func(t *testing.T) {
		s := New().Rule(FilterLineBreak|FilterNonPrintable, TransformHexEncode)
		assert.Equal(t, "a<0a>b<00>", s.Sanitize("a\nb\x00"))
	})
}

func TestSanitizerBufferReuse(t *testing.T) {
	s := New().Policy(PolicyCSV)

	long := strings.Repeat("x\n", 200)
	first := s.Sanitize(long)
	assert.Equal(t, strings.Count(long, "\n"), strings.Count(first, BreakTag))

	// Earlier results must not be overwritten by later calls
	second := s.Sanitize("short")
	assert.Equal(t, "short", second)
	assert.Equal(t, strings.Repeat("x <br> ", 200), first)
}

func BenchmarkSanitizer(b *testing.B) {
	input := strings.Repeat("normal text\x00\nmore", 100)
	s := New().Policy(PolicyCSV)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Sanitize(input)
	}
}
