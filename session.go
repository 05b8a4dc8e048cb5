package agentcontext

import (
	"context"

	"github.com/google/uuid"
)

// InitialSubmissionID tags the synthetic submission under which a
// freshly spawned session reports its SessionConfigured event.
const InitialSubmissionID = ""

// Event is one entry on a session's event stream. ID is the submission
// id the event responds to.
type Event struct {
	ID  string
	Msg EventMsg
}

// EventMsg is the closed set of event payloads the registry understands.
type EventMsg interface {
	eventMsg()
}

// SessionConfiguredEvent is the payload of the first event a session
// must deliver after spawn.
type SessionConfiguredEvent struct {
	// SessionID identifies the session; it becomes the conversation id.
	SessionID uuid.UUID

	// Model is the model the session was configured with.
	Model string
}

func (SessionConfiguredEvent) eventMsg() {}

// AgentMessageEvent carries assistant output produced by the session.
type AgentMessageEvent struct {
	Message string
}

func (AgentMessageEvent) eventMsg() {}

// TaskCompleteEvent signals that the session finished processing a submission.
type TaskCompleteEvent struct{}

func (TaskCompleteEvent) eventMsg() {}

// ErrorEvent carries a fatal session-side failure.
type ErrorEvent struct {
	Message string
}

func (ErrorEvent) eventMsg() {}

// SessionHandle is the narrow contract the registry consumes: deliver
// the next event, and accept submissions. Both operations honor
// context cancellation.
type SessionHandle interface {
	// NextEvent blocks until the session produces its next event.
	NextEvent(ctx context.Context) (Event, error)

	// Submit enqueues an operation and returns the submission id it
	// was assigned.
	Submit(ctx context.Context, op any) (string, error)
}

// SpawnResult is what a Spawner yields for a freshly started session.
type SpawnResult struct {
	Handle SessionHandle

	// SessionID is the stable identifier of the session.
	SessionID uuid.UUID

	// InitSubmissionID tags the first event; the registry rejects the
	// session if its first event carries a different id.
	InitSubmissionID string
}

// Spawner starts session collaborators from configuration and auth.
type Spawner interface {
	Spawn(ctx context.Context, config *Config, auth *Auth) (*SpawnResult, error)
}
