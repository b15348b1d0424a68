package ai

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ImageMarker replaces image parts for models that only accept text.
const ImageMarker = "[screenshot provided]"

// InboundMessage is a chat message as sent by clients; Content may be a
// string or an array of typed parts.
type InboundMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

// UnmarshalJSON accepts any JSON value. Non-object elements and non-string
// roles decode to an empty role, and content is kept raw for NormalizeContent.
func (m *InboundMessage) UnmarshalJSON(data []byte) error {
	*m = InboundMessage{}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil
	}
	var role string
	if json.Unmarshal(fields["role"], &role) == nil {
		m.Role = role
	}
	m.Content = fields["content"]
	return nil
}

type contentPart struct {
	Type string          `json:"type"`
	Text json.RawMessage `json:"text"`
}

// NormalizeMessages flattens every message's content into plain text.
func NormalizeMessages(in []InboundMessage) []Message {
	out := make([]Message, 0, len(in))
	for _, m := range in {
		out = append(out, Message{Role: m.Role, Content: NormalizeContent(m.Content)})
	}
	return out
}

// NormalizeContent turns message content into plain text. Strings pass
// through. Arrays keep their text parts and replace each image_url part with
// ImageMarker, joined by newlines. Anything else yields "".
func NormalizeContent(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return ""
		}
		return s
	case '[':
		var parts []json.RawMessage
		if err := json.Unmarshal(trimmed, &parts); err != nil {
			return ""
		}
		texts := make([]string, 0, len(parts))
		for _, p := range parts {
			var part contentPart
			if err := json.Unmarshal(p, &part); err != nil {
				continue
			}
			switch part.Type {
			case "text":
				var s string
				if json.Unmarshal(part.Text, &s) == nil {
					texts = append(texts, s)
				}
			case "image_url":
				texts = append(texts, ImageMarker)
			}
		}
		return strings.Join(texts, "\n")
	default:
		return ""
	}
}
