package chat

// systemPrompt is the fixed instruction seeding every conversation.
const systemPrompt = "You are a helpful coding assistant. Help the user write, debug, " +
	"and understand code in any programming language, and answer general programming questions clearly and concisely."

// Transcript is the append-only ordered conversation history. It always
// starts with the system message; entries are never removed or reordered.
// A failed turn leaves its user message in place with no paired assistant
// message, so the next attempt re-sends it as context.
type Transcript struct {
	messages []Message
}

// NewTranscript returns a transcript seeded with the system instruction.
func NewTranscript() *Transcript {
	return &Transcript{
		messages: []Message{{Role: RoleSystem, Content: systemPrompt}},
	}
}

// AppendUser appends one user message.
func (t *Transcript) AppendUser(content string) {
	t.messages = append(t.messages, Message{Role: RoleUser, Content: content})
}

// AppendAssistant appends one assistant message.
func (t *Transcript) AppendAssistant(content string) {
	t.messages = append(t.messages, Message{Role: RoleAssistant, Content: content})
}

// Snapshot returns a copy of the ordered message sequence.
func (t *Transcript) Snapshot() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len reports the number of messages in the transcript.
func (t *Transcript) Len() int {
	return len(t.messages)
}
