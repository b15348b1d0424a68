package ai_test

import (
	"encoding/json"
	"testing"

	"kitten/backend/internal/service/ai"

	"github.com/stretchr/testify/require"
)

func TestNormalizeContent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "string", raw: `"hello"`, want: "hello"},
		{name: "text and image", raw: `[{"type":"text","text":"what is this game?"},{"type":"image_url","image_url":{"url":"data:image/png;base64,AAAA"}}]`, want: "what is this game?\n[screenshot provided]"},
		{name: "image only", raw: `[{"type":"image_url","image_url":{"url":"https://x/y.png"}}]`, want: "[screenshot provided]"},
		{name: "unknown parts skipped", raw: `[{"type":"audio"},{"type":"text","text":"a"},"loose",{"type":"text","text":5}]`, want: "a"},
		{name: "empty array", raw: `[]`, want: ""},
		{name: "number", raw: `42`, want: ""},
		{name: "object", raw: `{"text":"x"}`, want: ""},
		{name: "null", raw: `null`, want: ""},
		{name: "missing", raw: ``, want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ai.NormalizeContent(json.RawMessage(tc.raw)))
		})
	}
}

func TestNormalizeMessages(t *testing.T) {
	var in []ai.InboundMessage
	require.NoError(t, json.Unmarshal([]byte(`[
		{"role":"system","content":"be kind"},
		{"role":"user","content":[{"type":"text","text":"look"},{"type":"image_url","image_url":{"url":"u"}}]},
		{"role":"assistant"}
	]`), &in))

	out := ai.NormalizeMessages(in)
	require.Equal(t, []ai.Message{
		{Role: "system", Content: "be kind"},
		{Role: "user", Content: "look\n" + ai.ImageMarker},
		{Role: "assistant", Content: ""},
	}, out)
}

func TestInboundMessage_LenientDecode(t *testing.T) {
	var in []ai.InboundMessage
	require.NoError(t, json.Unmarshal([]byte(`[
		"just a string",
		{"role":7,"content":"numeric role"},
		{"role":"user","content":"fine"},
		null,
		[1,2]
	]`), &in))
	require.Len(t, in, 5)

	out := ai.NormalizeMessages(in)
	require.Equal(t, []ai.Message{
		{Role: "", Content: ""},
		{Role: "", Content: "numeric role"},
		{Role: "user", Content: "fine"},
		{Role: "", Content: ""},
		{Role: "", Content: ""},
	}, out)
}
