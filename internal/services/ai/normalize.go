// File: internal/services/ai/normalize.go
package ai

// Normalization helpers reshape the internal message list into the form
// each provider family expects. All of them are pure: feeding the same
// ordered list twice yields identical output. An empty list is a caller
// error and is rejected by the dispatcher before any of these run.

// SplitSystem extracts the system prompt for providers that take it as a
// separate field. The first message with role "system" supplies the
// prompt (empty string if absent, never an error); the remaining
// non-system messages form the turn history with any role other than
// "user" flattened to "assistant".
func SplitSystem(messages []ChatMessage) (string, []ChatMessage) {
	system := ""
	found := false
	turns := make([]ChatMessage, 0, len(messages))
	for _, m := range messages {
		if m.Role == RoleSystem {
			if !found {
				system = m.Content
				found = true
			}
			continue
		}
		role := RoleAssistant
		if m.Role == RoleUser {
			role = RoleUser
		}
		turns = append(turns, ChatMessage{Role: role, Content: m.Content})
	}
	return system, turns
}

// SplitHistory prepares the shape for providers that take a structured
// turn history plus a final prompt: every message but the last becomes
// history, and the last message is the new turn.
func SplitHistory(messages []ChatMessage) ([]ChatMessage, ChatMessage) {
	last := messages[len(messages)-1]
	return messages[:len(messages)-1], last
}

// LastContent returns the final message's content, used as the prompt for
// image generation.
func LastContent(messages []ChatMessage) string {
	return messages[len(messages)-1].Content
}
