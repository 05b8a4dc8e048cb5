package policy

import (
	"strings"
	"testing"
)

func TestAdviseForCommand(t *testing.T) {
	tests := []struct {
		name     string
		policy   SandboxPolicy
		command  []string
		ok       bool
		contains string
	}{
		{
			name:     "read-only warns on cargo",
			policy:   ReadOnly{},
			command:  []string{"cargo", "build"},
			ok:       true,
			contains: "READ_ONLY may block",
		},
		{
			name:     "read-only warns on install argument",
			policy:   ReadOnly{},
			command:  []string{"make", "install"},
			ok:       true,
			contains: "READ_ONLY may block",
		},
		{
			name:    "read-only silent on plain inspection",
			policy:  ReadOnly{},
			command: []string{"cat", "README.md"},
		},
		{
			name:     "offline workspace warns on git",
			policy:   WorkspaceWrite{NetworkAccess: false},
			command:  []string{"git", "fetch"},
			ok:       true,
			contains: "network disabled",
		},
		{
			name:    "online workspace is silent",
			policy:  WorkspaceWrite{NetworkAccess: true},
			command: []string{"git", "fetch"},
		},
		{
			name:    "offline workspace silent on local tools",
			policy:  WorkspaceWrite{NetworkAccess: false},
			command: []string{"go", "vet", "./..."},
		},
		{
			name:     "full access always warns",
			policy:   DangerFullAccess{},
			command:  []string{"ls"},
			ok:       true,
			contains: "GODMODE active",
		},
		{
			name:     "full access warns even with no command",
			policy:   DangerFullAccess{},
			command:  nil,
			ok:       true,
			contains: "GODMODE active",
		},
		{
			name:    "empty command silent under read-only",
			policy:  ReadOnly{},
			command: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advisory, ok := AdviseForCommand(tt.policy, tt.command)
			if ok != tt.ok {
				t.Fatalf("AdviseForCommand() ok = %v, want %v (advisory %q)", ok, tt.ok, advisory)
			}
			if !ok {
				if advisory != "" {
					t.Errorf("ok=false with non-empty advisory %q", advisory)
				}
				return
			}
			if !strings.HasPrefix(advisory, "[enforcement]") {
				t.Errorf("advisory missing enforcement prefix: %q", advisory)
			}
			if !strings.Contains(advisory, tt.contains) {
				t.Errorf("advisory %q missing %q", advisory, tt.contains)
			}
		})
	}
}
