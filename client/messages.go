package client

import (
	"github.com/openai/openai-go"

	ai "github.com/kressley/outform"
)

// convertMessages maps library messages onto the SDK's message unions.
// User messages with parts are sent as content-part arrays; assistant and
// system turns are sent as plain strings. Empty messages are skipped.
func convertMessages(messages []ai.Message) []openai.ChatCompletionMessageParamUnion {
	var result []openai.ChatCompletionMessageParamUnion
	for _, msg := range messages {
		switch msg.Role {
		case ai.RoleUser:
			if msg.HasParts() {
				parts := convertTextParts(msg.Parts)
				if len(parts) > 0 {
					result = append(result, openai.ChatCompletionMessageParamUnion{
						OfUser: &openai.ChatCompletionUserMessageParam{
							Content: openai.ChatCompletionUserMessageParamContentUnion{
								OfArrayOfContentParts: parts,
							},
						},
					})
				}
			} else if msg.Content != "" {
				result = append(result, openai.UserMessage(msg.Content))
			}
		case ai.RoleAssistant:
			if text := msg.Text(); text != "" {
				result = append(result, openai.AssistantMessage(text))
			}
		case ai.RoleSystem:
			if text := msg.Text(); text != "" {
				result = append(result, openai.SystemMessage(text))
			}
		default:
			if text := msg.Text(); text != "" {
				result = append(result, openai.UserMessage(text))
			}
		}
	}
	return result
}

func convertTextParts(parts []ai.ContentPart) []openai.ChatCompletionContentPartUnionParam {
	var result []openai.ChatCompletionContentPartUnionParam
	for _, part := range parts {
		if part.Type == ai.ContentPartTypeText && part.Text != "" {
			result = append(result, openai.TextContentPart(part.Text))
		}
	}
	return result
}
