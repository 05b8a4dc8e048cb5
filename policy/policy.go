// Package policy decides whether a proposed tool command may run under
// the active sandbox policy, and produces non-blocking advisories for
// the same inputs. Both the gate and the advisor are total, pure
// functions: they never touch the filesystem or the network, so they
// can be invoked from any call site, including UI previews.
package policy

// SandboxPolicy is the closed set of sandbox profiles a session can
// run under.
type SandboxPolicy interface {
	sandboxPolicy()

	// Name is the profile name used in enforcement messages,
	// e.g. "READ_ONLY".
	Name() string
}

// ReadOnly permits inspection only: no writes, no package managers, no
// network tools.
type ReadOnly struct{}

func (ReadOnly) sandboxPolicy() {}

// Name implements SandboxPolicy.
func (ReadOnly) Name() string { return "READ_ONLY" }

// WorkspaceWrite permits writes inside the workspace. Network use is
// gated by NetworkAccess.
type WorkspaceWrite struct {
	NetworkAccess bool

	// WritableRoots lists extra directories writable beyond the
	// workspace. Reserved for sandbox construction; the gate does not
	// consult it.
	WritableRoots []string
}

func (WorkspaceWrite) sandboxPolicy() {}

// Name implements SandboxPolicy.
func (WorkspaceWrite) Name() string { return "WORKSPACE_WRITE" }

// DangerFullAccess disables sandboxing entirely.
type DangerFullAccess struct{}

func (DangerFullAccess) sandboxPolicy() {}

// Name implements SandboxPolicy.
func (DangerFullAccess) Name() string { return "GODMODE" }
