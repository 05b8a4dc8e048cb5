package policy

import "strings"

// Toolchains whose presence under ReadOnly usually means the user is
// about to build or install something.
var buildToolNames = []string{
	"cargo", "npm", "pnpm", "uv", "pip", "pip3", "python", "python3",
	"node", "bash", "sh",
}

// Network-reliant programs that stall when network access is off.
var networkToolNames = []string{
	"curl", "wget", "git", "pip", "pip3", "npm", "pnpm", "uv",
}

// AdviseForCommand returns a human-readable advisory for the given
// command under the current sandbox policy, or ok=false when there is
// nothing to say. Purely diagnostic; never blocks execution.
func AdviseForCommand(policy SandboxPolicy, command []string) (advisory string, ok bool) {
	prog := ""
	if len(command) > 0 {
		prog = command[0]
	}

	switch p := policy.(type) {
	case ReadOnly:
		looksTool := endsWithAny(prog, buildToolNames) ||
			hasAnyArg(command, "install", "build")
		if looksTool {
			return "[enforcement] READ_ONLY may block build/install; consider WORKSPACE_WRITE or request approval", true
		}

	case WorkspaceWrite:
		if !p.NetworkAccess {
			if endsWithAny(prog, networkToolNames) || hasAnyArg(command, "clone") {
				return "[enforcement] network disabled; enable network or switch profile", true
			}
		}

	case DangerFullAccess:
		return "[enforcement] GODMODE active; actions run with full host access", true
	}
	return "", false
}

func endsWithAny(s string, suffixes []string) bool {
	if s == "" {
		return false
	}
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func hasAnyArg(command []string, args ...string) bool {
	for _, c := range command {
		for _, a := range args {
			if c == a {
				return true
			}
		}
	}
	return false
}
