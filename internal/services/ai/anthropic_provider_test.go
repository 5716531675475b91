package ai

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
)

func TestConvertAnthropicTurns(t *testing.T) {
	turns := []ChatMessage{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
		{Role: RoleUser, Content: "how are you"},
	}

	params := convertAnthropicTurns(turns)

	if len(params) != 3 {
		t.Fatalf("converted %d params, want 3", len(params))
	}

	wantRoles := []anthropic.MessageParamRole{
		anthropic.MessageParamRoleUser,
		anthropic.MessageParamRoleAssistant,
		anthropic.MessageParamRoleUser,
	}
	for i, want := range wantRoles {
		if params[i].Role != want {
			t.Errorf("params[%d].Role = %v, want %v", i, params[i].Role, want)
		}
	}
}
