// Package envctx renders the environment-context envelope injected at
// the start of a conversation so the model knows where it is running
// and under which sandbox profile.
package envctx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/youssefsiam38/agentcontext"
	"github.com/youssefsiam38/agentcontext/policy"
)

// Envelope delimiters the model parses the context out of.
const (
	StartTag = "<environment_context>"
	EndTag   = "</environment_context>"
)

// ApprovalPolicy controls when the user is asked to approve commands.
// Values serialize in lowercase-kebab form.
type ApprovalPolicy string

const (
	ApprovalUntrusted ApprovalPolicy = "untrusted"
	ApprovalOnFailure ApprovalPolicy = "on-failure"
	ApprovalOnRequest ApprovalPolicy = "on-request"
	ApprovalNever     ApprovalPolicy = "never"
)

// SandboxMode is the kebab-form name of a sandbox policy variant.
type SandboxMode string

const (
	SandboxReadOnly         SandboxMode = "read-only"
	SandboxWorkspaceWrite   SandboxMode = "workspace-write"
	SandboxDangerFullAccess SandboxMode = "danger-full-access"
)

// NetworkAccess is the kebab-form network state.
type NetworkAccess string

const (
	NetworkRestricted NetworkAccess = "restricted"
	NetworkEnabled    NetworkAccess = "enabled"
)

// EnvironmentContext collects the optional facts emitted in the
// envelope. Only populated fields are serialized, in declaration
// order.
type EnvironmentContext struct {
	Cwd            string
	ApprovalPolicy ApprovalPolicy
	SandboxMode    SandboxMode
	NetworkAccess  NetworkAccess
	Shell          string
	PolicyLevel    string
	Wrapper        string
	ArtifactsRoot  string
}

// New derives an environment context from the working directory, the
// approval policy, and the sandbox policy. The policy level is read
// from configs/policy.yaml under cwd when present; wrapper
// availability is probed from the repo's sandbox scripts.
func New(cwd string, approval ApprovalPolicy, sandbox policy.SandboxPolicy, shell string) *EnvironmentContext {
	ec := &EnvironmentContext{
		Cwd:            cwd,
		ApprovalPolicy: approval,
		Shell:          shell,
	}

	switch p := sandbox.(type) {
	case policy.ReadOnly:
		ec.SandboxMode = SandboxReadOnly
		ec.NetworkAccess = NetworkRestricted
	case policy.WorkspaceWrite:
		ec.SandboxMode = SandboxWorkspaceWrite
		if p.NetworkAccess {
			ec.NetworkAccess = NetworkEnabled
		} else {
			ec.NetworkAccess = NetworkRestricted
		}
	case policy.DangerFullAccess:
		ec.SandboxMode = SandboxDangerFullAccess
		ec.NetworkAccess = NetworkEnabled
	}

	if cwd != "" {
		if levels, err := policy.LoadLevelsFromRepo(cwd); err == nil {
			ec.PolicyLevel = levels.ActiveLevel()
		}
		ec.Wrapper = detectWrapper(cwd)
		ec.ArtifactsRoot = filepath.Join(cwd, "orchestrator", "episodes")
	}

	return ec
}

// detectWrapper probes the repo for isolation wrapper entry points.
func detectWrapper(cwd string) string {
	if isFile(filepath.Join(cwd, "sandbox", "firecracker", "start.sh")) {
		return "firecracker"
	}
	if isFile(filepath.Join(cwd, "sandbox", "gvisor", "run.sh")) {
		return "gvisor"
	}
	return "none"
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// SerializeToXML renders the envelope. Generic XML encoders need
// custom handling for the enum fields, so the fragment is assembled
// manually; only populated fields are emitted.
func (ec *EnvironmentContext) SerializeToXML() string {
	lines := []string{StartTag}
	appendTag := func(name, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("  <%s>%s</%s>", name, value, name))
		}
	}
	appendTag("cwd", ec.Cwd)
	appendTag("approval_policy", string(ec.ApprovalPolicy))
	appendTag("sandbox_mode", string(ec.SandboxMode))
	appendTag("network_access", string(ec.NetworkAccess))
	appendTag("shell", ec.Shell)
	appendTag("policy_level", ec.PolicyLevel)
	appendTag("wrapper", ec.Wrapper)
	appendTag("artifacts_root", ec.ArtifactsRoot)
	lines = append(lines, EndTag)
	return strings.Join(lines, "\n")
}

// TranscriptItem wraps the envelope as a user message for injection at
// the start of a conversation.
func (ec *EnvironmentContext) TranscriptItem() agentcontext.TranscriptItem {
	return agentcontext.NewInputTextMessage(agentcontext.RoleUser, ec.SerializeToXML())
}
