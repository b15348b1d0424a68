package sanitizer_test

import (
	"testing"

	"kitten/backend/pkg/sanitizer"

	"github.com/stretchr/testify/require"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Add racing games", expected: "Add racing games"},
		{name: "nested", input: "<p>Hello <strong>World</strong></p>", expected: "Hello World"},
		{name: "whitespace", input: "   <b>  spaced </b>  ", expected: "spaced"},
		{name: "empty", input: "   ", expected: ""},
		{name: "script body kept as text", input: "<script>alert(1)</script>", expected: "alert(1)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, sanitizer.StripTags(tc.input))
		})
	}
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "Dark mode please", sanitizer.CleanText("<i>Dark</i> mode please", 0))
	require.Equal(t, "Tom & Jerry", sanitizer.CleanText("Tom & Jerry", 0))
	require.Equal(t, "a < b", sanitizer.CleanText("a &lt; b", 0))
}

func TestCleanText_Truncates(t *testing.T) {
	require.Equal(t, "abc", sanitizer.CleanText("abcdef", 3))
	require.Equal(t, "héé", sanitizer.CleanText("hééllo", 3))
	require.Equal(t, "short", sanitizer.CleanText("short", 10))
}
