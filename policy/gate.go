package policy

import (
	"fmt"
	"path/filepath"
)

// GateDecision is the outcome of gating a command: Allow, or Deny with
// a human-readable message naming the offending program and rationale.
type GateDecision struct {
	Allowed bool
	Message string
}

// Allow returns the permissive decision.
func Allow() GateDecision { return GateDecision{Allowed: true} }

// Deny returns a blocking decision with the given message.
func Deny(message string) GateDecision { return GateDecision{Message: message} }

// Programs denied outright under ReadOnly. git is handled separately
// so its read-only subcommands stay available.
var readOnlyMutators = map[string]bool{
	"npm": true, "pnpm": true, "cargo": true, "pip": true, "pip3": true,
	"uv": true, "apt-get": true, "brew": true, "curl": true, "wget": true,
	"bash": true, "sh": true, "rm": true, "mv": true, "cp": true,
	"sed": true, "awk": true,
}

// git subcommands that only inspect state.
var readOnlyGitSubcommands = map[string]bool{
	"status": true, "show": true, "diff": true, "log": true,
	"ls-files": true, "grep": true,
}

// Decide maps (policy, command, cwd) to a gate decision. It is
// deterministic and side-effect free: only the command vector and the
// policy are inspected. cwd is threaded through for forward
// compatibility and currently unused. An empty command falls through
// to Allow under every policy.
func Decide(policy SandboxPolicy, command []string, cwd string) GateDecision {
	prog := ""
	if len(command) > 0 {
		prog = baseProg(command[0])
	}

	switch p := policy.(type) {
	case ReadOnly:
		return decideReadOnly(prog, command)
	case WorkspaceWrite:
		return decideWorkspaceWrite(p, prog, command)
	case DangerFullAccess:
		return Allow()
	default:
		return Allow()
	}
}

func decideReadOnly(prog string, command []string) GateDecision {
	if prog == "git" {
		sub := ""
		if len(command) > 1 {
			sub = command[1]
		}
		if readOnlyGitSubcommands[sub] {
			return Allow()
		}
		return Deny(fmt.Sprintf("[enforcement] READ_ONLY denies 'git %s'.", sub))
	}
	if readOnlyMutators[prog] {
		return Deny(fmt.Sprintf("[enforcement] READ_ONLY denies command '%s'. Switch to WORKSPACE_WRITE or request approval.", prog))
	}
	return Allow()
}

func decideWorkspaceWrite(p WorkspaceWrite, prog string, command []string) GateDecision {
	if prog == "apt-get" || prog == "brew" {
		return Deny(fmt.Sprintf("[enforcement] WORKSPACE_WRITE denies system tool '%s'.", prog))
	}
	if !p.NetworkAccess {
		if prog == "curl" || prog == "wget" {
			return Deny("[enforcement] network disabled for this profile.")
		}
		if isDependencyInstall(prog, command) {
			return Deny("[enforcement] dependency install requires network; enable network or switch profile.")
		}
	}
	return Allow()
}

// isDependencyInstall recognizes the common dependency fetch shapes:
// git clone, npm/pnpm/pip/pip3 install, and any uv pip invocation.
func isDependencyInstall(prog string, command []string) bool {
	switch prog {
	case "git":
		return hasArg(command, "clone")
	case "npm", "pnpm", "pip", "pip3":
		return hasArg(command, "install")
	case "uv":
		return hasArg(command, "pip")
	}
	return false
}

func hasArg(command []string, arg string) bool {
	for _, c := range command[1:] {
		if c == arg {
			return true
		}
	}
	return false
}

// baseProg strips any directory prefix from the program path.
func baseProg(s string) string {
	if s == "" {
		return ""
	}
	return filepath.Base(s)
}
