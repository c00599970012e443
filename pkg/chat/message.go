// Package chat implements the conversation model and the completion client.
package chat

// Role is the role for a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged conversation entry. Immutable once created.
type Message struct {
	Role    Role
	Content string
}
