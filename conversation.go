package agentcontext

import "context"

// Conversation is the shared handle to a live session. The registry
// and external callers hold the same *Conversation; its lifetime
// extends until the last holder drops it.
type Conversation struct {
	handle SessionHandle
}

func newConversation(handle SessionHandle) *Conversation {
	return &Conversation{handle: handle}
}

// NextEvent delivers the session's next event.
func (c *Conversation) NextEvent(ctx context.Context) (Event, error) {
	return c.handle.NextEvent(ctx)
}

// Submit enqueues an operation on the session and returns its
// submission id.
func (c *Conversation) Submit(ctx context.Context, op any) (string, error) {
	return c.handle.Submit(ctx, op)
}
