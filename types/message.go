// Package types contains the shared data model for conversational training
// examples. It helps avoid import cycles while providing common data
// structures.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Role identifies the speaker of a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// SegmentType discriminates the variants of a ContentSegment.
type SegmentType string

const (
	SegmentText  SegmentType = "text"
	SegmentImage SegmentType = "image"
)

// ContentSegment is one typed unit of message content: either a text run or
// an image placeholder. Image segments carry no payload; the actual pixels
// live elsewhere in the pipeline and are matched to placeholders by position.
//
// The JSON shape matches the dataset format:
//
//	{"type": "image"}
//	{"type": "text", "content": "This is a sample image."}
type ContentSegment struct {
	Type SegmentType `json:"type" validate:"required,oneof=text image"`
	Text string      `json:"content,omitempty"`
}

// NewTextSegment returns a text segment carrying the given run of text.
func NewTextSegment(text string) ContentSegment {
	return ContentSegment{Type: SegmentText, Text: text}
}

// NewImageSegment returns an image placeholder segment.
func NewImageSegment() ContentSegment {
	return ContentSegment{Type: SegmentImage}
}

// Message is a single role-tagged entry in a conversation. Content is an
// ordered list of segments; ordering is significant and preserved.
type Message struct {
	Role    Role             `json:"role" validate:"required,oneof=system user assistant"`
	Content []ContentSegment `json:"content" validate:"dive"`
}

// Conversation is an ordered list of messages forming one training dialogue
// example.
type Conversation []Message

// TextContent joins the payloads of all text segments in order, skipping
// image placeholders.
func (m Message) TextContent() string {
	var sb strings.Builder
	for _, seg := range m.Content {
		if seg.Type == SegmentText {
			sb.WriteString(seg.Text)
		}
	}
	return sb.String()
}

// validate is the shared validator instance used across the package.
var validate = validator.New()

// Validate checks a message's structural shape (known role, well-formed
// segments) against its struct tags. Turn ordering across a conversation is
// a separate concern handled by prep.ValidateMessages.
func Validate(m Message) error {
	return validate.Struct(m)
}
