package outform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTextPart(t *testing.T) {
	part := NewTextPart("hello")
	assert.Equal(t, ContentPartTypeText, part.Type)
	assert.Equal(t, "hello", part.Text)
}

func TestGenerateMessageID(t *testing.T) {
	a := GenerateMessageID()
	b := GenerateMessageID()

	assert.True(t, strings.HasPrefix(a, "msg-"))
	assert.NotEqual(t, a, b)
}

func TestMessage_HasParts(t *testing.T) {
	assert.False(t, Message{Content: "plain"}.HasParts())
	assert.True(t, Message{Parts: []ContentPart{NewTextPart("x")}}.HasParts())
}

func TestMessage_Text(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{
			name: "plain content",
			msg:  Message{Content: "plain"},
			want: "plain",
		},
		{
			name: "single part",
			msg:  Message{Parts: []ContentPart{NewTextPart("one")}},
			want: "one",
		},
		{
			name: "parts concatenated",
			msg:  Message{Parts: []ContentPart{NewTextPart("one"), NewTextPart(" two")}},
			want: "one two",
		},
		{
			name: "parts win over content",
			msg:  Message{Content: "ignored", Parts: []ContentPart{NewTextPart("part")}},
			want: "part",
		},
		{
			name: "empty",
			msg:  Message{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.msg.Text())
		})
	}
}
