package outform

import (
	"strings"

	"github.com/google/uuid"
)

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ContentPartType represents the type of content in a message part.
type ContentPartType string

const (
	ContentPartTypeText ContentPartType = "text"
)

// ContentPart is one part of a multi-part message body. The completion
// service accepts message content either as a plain string or as an ordered
// sequence of typed parts; only text parts exist in this library.
type ContentPart struct {
	Type ContentPartType `json:"type"`
	Text string          `json:"text,omitempty"`
}

// NewTextPart creates a text content part.
func NewTextPart(text string) ContentPart {
	return ContentPart{
		Type: ContentPartTypeText,
		Text: text,
	}
}

// Message represents a single turn in a conversation.
type Message struct {
	// ID is an optional unique identifier for the message.
	ID   string `json:"id,omitempty"`
	Role Role   `json:"role"`
	// Content holds plain-string content. Ignored when Parts is populated.
	Content string `json:"content,omitempty"`
	// Parts holds typed content parts, sent to the service as an array.
	Parts []ContentPart `json:"parts,omitempty"`
}

// GenerateMessageID creates a unique message identifier.
func GenerateMessageID() string {
	return "msg-" + uuid.New().String()
}

// HasParts returns true if the message carries typed content parts.
func (m Message) HasParts() bool {
	return len(m.Parts) > 0
}

// Text returns the textual content of the message: Content when no parts
// are present, otherwise the concatenation of all text parts.
func (m Message) Text() string {
	if !m.HasParts() {
		return m.Content
	}
	var sb strings.Builder
	for _, p := range m.Parts {
		if p.Type == ContentPartTypeText {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// Response represents a complete response from the completion service.
type Response struct {
	Content      string `json:"content,omitempty"`
	FinishReason string `json:"finishReason,omitempty"`
	Usage        Usage  `json:"usage"`
}

// Usage contains token usage information for a request.
type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
}
