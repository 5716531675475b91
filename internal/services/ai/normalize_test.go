package ai

import (
	"reflect"
	"testing"
)

func TestSplitSystem(t *testing.T) {
	tests := []struct {
		name       string
		messages   []ChatMessage
		wantSystem string
		wantTurns  []ChatMessage
	}{
		{
			name: "system extracted and removed from turns",
			messages: []ChatMessage{
				{Role: RoleSystem, Content: "be terse"},
				{Role: RoleUser, Content: "hi"},
				{Role: RoleAssistant, Content: "hello"},
			},
			wantSystem: "be terse",
			wantTurns: []ChatMessage{
				{Role: RoleUser, Content: "hi"},
				{Role: RoleAssistant, Content: "hello"},
			},
		},
		{
			name: "missing system becomes empty prompt, not an error",
			messages: []ChatMessage{
				{Role: RoleUser, Content: "hi"},
			},
			wantSystem: "",
			wantTurns:  []ChatMessage{{Role: RoleUser, Content: "hi"}},
		},
		{
			name: "only first system message wins, later ones dropped",
			messages: []ChatMessage{
				{Role: RoleSystem, Content: "first"},
				{Role: RoleSystem, Content: "second"},
				{Role: RoleUser, Content: "hi"},
			},
			wantSystem: "first",
			wantTurns:  []ChatMessage{{Role: RoleUser, Content: "hi"}},
		},
		{
			name: "unknown roles flatten to assistant",
			messages: []ChatMessage{
				{Role: "tool", Content: "output"},
				{Role: RoleUser, Content: "hi"},
			},
			wantSystem: "",
			wantTurns: []ChatMessage{
				{Role: RoleAssistant, Content: "output"},
				{Role: RoleUser, Content: "hi"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			system, turns := SplitSystem(tc.messages)
			if system != tc.wantSystem {
				t.Errorf("system = %q, want %q", system, tc.wantSystem)
			}
			if !reflect.DeepEqual(turns, tc.wantTurns) {
				t.Errorf("turns = %v, want %v", turns, tc.wantTurns)
			}
		})
	}
}

func TestSplitSystemIdempotent(t *testing.T) {
	messages := []ChatMessage{
		{Role: RoleSystem, Content: "be terse"},
		{Role: RoleUser, Content: "hi"},
		{Role: "Tool", Content: "x"},
	}

	s1, t1 := SplitSystem(messages)
	s2, t2 := SplitSystem(messages)

	if s1 != s2 || !reflect.DeepEqual(t1, t2) {
		t.Errorf("SplitSystem not idempotent: (%q, %v) vs (%q, %v)", s1, t1, s2, t2)
	}
}

func TestSplitHistory(t *testing.T) {
	messages := []ChatMessage{
		{Role: RoleUser, Content: "one"},
		{Role: RoleAssistant, Content: "two"},
		{Role: RoleUser, Content: "three"},
	}

	history, last := SplitHistory(messages)

	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if last.Content != "three" {
		t.Errorf("last.Content = %q, want %q", last.Content, "three")
	}

	single := []ChatMessage{{Role: RoleUser, Content: "only"}}
	history, last = SplitHistory(single)
	if len(history) != 0 {
		t.Errorf("single-message history length = %d, want 0", len(history))
	}
	if last.Content != "only" {
		t.Errorf("last.Content = %q, want %q", last.Content, "only")
	}
}

func TestLastContent(t *testing.T) {
	messages := []ChatMessage{
		{Role: RoleUser, Content: "ignored"},
		{Role: RoleUser, Content: "a red cat"},
	}
	if got := LastContent(messages); got != "a red cat" {
		t.Errorf("LastContent = %q, want %q", got, "a red cat")
	}
}

func TestGoogleRole(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{RoleUser, "user"},
		{RoleAssistant, "model"},
		{RoleSystem, "model"},
		{"anything", "model"},
	}
	for _, tc := range tests {
		if got := googleRole(tc.role); got != tc.want {
			t.Errorf("googleRole(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}
