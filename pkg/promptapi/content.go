// ABOUTME: Message roles, content kinds, and the tagged content union
// ABOUTME: Strict JSON codecs; the type tag must match the carried value

package promptapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role identifies the author of a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the three defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// UnmarshalJSON rejects any role outside the closed set.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("role: %w", err)
	}
	role := Role(s)
	if !role.Valid() {
		return fmt.Errorf("unknown role %q", s)
	}
	*r = role
	return nil
}

// ContentType identifies the kind of a content item.
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
	ContentAudio ContentType = "audio"
)

// Valid reports whether t is one of the three defined content kinds.
func (t ContentType) Valid() bool {
	switch t {
	case ContentText, ContentImage, ContentAudio:
		return true
	}
	return false
}

// UnmarshalJSON rejects any content kind outside the closed set.
func (t *ContentType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("content type: %w", err)
	}
	ct := ContentType(s)
	if !ct.Valid() {
		return fmt.Errorf("unknown content type %q", s)
	}
	*t = ct
	return nil
}

// Media carries the value of an image or audio content item. The accepted
// representations are host-platform media types; this package only checks
// that the MIME type agrees with the content kind.
type Media struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

// Content is the tagged union over the three content kinds. Text items carry
// Text; image and audio items carry Media. The tag must match the populated
// value: Validate and the JSON codec both enforce it.
type Content struct {
	Type  ContentType
	Text  string
	Media *Media
}

// Validate checks that the tag matches the carried value.
func (c Content) Validate() error {
	switch c.Type {
	case ContentText:
		if c.Media != nil {
			return fmt.Errorf("text content must not carry media")
		}
	case ContentImage, ContentAudio:
		if c.Media == nil {
			return fmt.Errorf("%s content requires media", c.Type)
		}
		if c.Text != "" {
			return fmt.Errorf("%s content must not carry text", c.Type)
		}
		want := string(c.Type) + "/"
		if !strings.HasPrefix(c.Media.MIMEType, want) {
			return fmt.Errorf("%s content has MIME type %q, want %s*", c.Type, c.Media.MIMEType, want)
		}
	default:
		return fmt.Errorf("unknown content type %q", c.Type)
	}
	return nil
}

// contentWire is the serialized form: {"type": ..., "value": ...} where the
// value representation depends on the type tag.
type contentWire struct {
	Type  ContentType     `json:"type"`
	Value json.RawMessage `json:"value"`
}

func (c Content) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var value any
	if c.Type == ContentText {
		value = c.Text
	} else {
		value = c.Media
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(contentWire{Type: c.Type, Value: raw})
}

func (c *Content) UnmarshalJSON(data []byte) error {
	var wire contentWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	out := Content{Type: wire.Type}
	switch wire.Type {
	case ContentText:
		if err := json.Unmarshal(wire.Value, &out.Text); err != nil {
			return fmt.Errorf("text content value must be a string: %w", err)
		}
	case ContentImage, ContentAudio:
		var m Media
		if err := json.Unmarshal(wire.Value, &m); err != nil {
			return fmt.Errorf("%s content value must be a media object: %w", wire.Type, err)
		}
		out.Media = &m
	}
	if err := out.Validate(); err != nil {
		return err
	}
	*c = out
	return nil
}

// Message pairs a role tag with one content item.
type Message struct {
	Role    Role    `json:"role"`
	Content Content `json:"content"`
}

// Validate checks the role and the content item.
func (m Message) Validate() error {
	if !m.Role.Valid() {
		return fmt.Errorf("unknown role %q", m.Role)
	}
	return m.Content.Validate()
}

// TextMessage builds a message carrying plain text.
func TextMessage(role Role, text string) Message {
	return Message{Role: role, Content: Content{Type: ContentText, Text: text}}
}

// ImageMessage builds a message carrying image data.
func ImageMessage(role Role, mimeType string, data []byte) Message {
	return Message{Role: role, Content: Content{Type: ContentImage, Media: &Media{MIMEType: mimeType, Data: data}}}
}

// AudioMessage builds a message carrying audio data.
func AudioMessage(role Role, mimeType string, data []byte) Message {
	return Message{Role: role, Content: Content{Type: ContentAudio, Media: &Media{MIMEType: mimeType, Data: data}}}
}
