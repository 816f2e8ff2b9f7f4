package outform

// ChatModel identifies a completion model by its wire name.
type ChatModel string

// Chat models known to work with strict structured output.
const (
	GPT4o     ChatModel = "gpt-4o"
	GPT4oMini ChatModel = "gpt-4o-mini"
	GPT41     ChatModel = "gpt-4.1"
	GPT41Mini ChatModel = "gpt-4.1-mini"
)

// DefaultChatModel is used when neither the client config nor a request
// option names a model.
const DefaultChatModel = GPT4o

// String returns the model's wire name.
func (m ChatModel) String() string {
	return string(m)
}
