package agentcontext

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// NewConversationResult is a newly created conversation, including the
// first event (which is always SessionConfigured).
type NewConversationResult struct {
	ConversationID    uuid.UUID
	Conversation      *Conversation
	SessionConfigured SessionConfiguredEvent
}

// ConversationManager creates conversations and keeps them in memory,
// keyed by conversation id. The map is guarded by a reader-writer
// lock; the lock is held only across map mutation, never across waits
// on a session stream. A manager is safe for concurrent use; it never
// removes entries on its own.
type ConversationManager struct {
	spawner Spawner
	auth    AuthLoader
	logger  Logger

	mu            sync.RWMutex
	conversations map[uuid.UUID]*Conversation
}

// NewConversationManager creates a manager over the given spawner.
// auth may be nil when the spawner needs no credentials; logger may be
// nil for silence.
func NewConversationManager(spawner Spawner, auth AuthLoader, logger Logger) *ConversationManager {
	if logger == nil {
		logger = noopLogger{}
	}
	return &ConversationManager{
		spawner:       spawner,
		auth:          auth,
		logger:        logger,
		conversations: make(map[uuid.UUID]*Conversation),
	}
}

// NewConversation loads credentials per the config's auth preference,
// spawns a session, and registers it once its first event checks out.
func (m *ConversationManager) NewConversation(ctx context.Context, config *Config) (*NewConversationResult, error) {
	if err := config.Validate(); err != nil {
		return nil, NewConversationError("NewConversation", err)
	}

	var auth *Auth
	if m.auth != nil {
		mode := AuthModeAPIKey
		if config.UsingChatGPTAuth {
			mode = AuthModeChatGPT
		}
		loaded, err := m.auth.Load(config.Home, mode)
		if err != nil {
			return nil, NewConversationError("NewConversation", err)
		}
		auth = loaded
	}

	return m.NewConversationWithAuth(ctx, config, auth)
}

// NewConversationWithAuth spawns with explicit credentials. Intended
// for integration tests and hosts that manage auth themselves.
//
// The first event must be SessionConfigured, delivered under the
// spawn's initial submission id. Any other first event discards the
// session: nothing is inserted and the error is returned, so a
// cancelled or failed spawn never leaves a half-registered entry.
func (m *ConversationManager) NewConversationWithAuth(ctx context.Context, config *Config, auth *Auth) (*NewConversationResult, error) {
	spawned, err := m.spawner.Spawn(ctx, config, auth)
	if err != nil {
		return nil, NewConversationError("NewConversation", fmt.Errorf("%w: %v", ErrSpawnFailed, err))
	}

	event, err := spawned.Handle.NextEvent(ctx)
	if err != nil {
		return nil, NewConversationError("NewConversation", err).WithConversation(spawned.SessionID)
	}

	configured, ok := event.Msg.(SessionConfiguredEvent)
	if !ok || event.ID != spawned.InitSubmissionID {
		m.logger.Warn("discarding session: unexpected first event",
			"session_id", spawned.SessionID,
			"submission_id", event.ID,
		)
		return nil, NewConversationError("NewConversation", ErrSessionConfiguredNotFirstEvent).
			WithConversation(spawned.SessionID)
	}

	conversation := newConversation(spawned.Handle)

	m.mu.Lock()
	m.conversations[spawned.SessionID] = conversation
	m.mu.Unlock()

	m.logger.Info("conversation registered", "conversation_id", spawned.SessionID)

	return &NewConversationResult{
		ConversationID:    spawned.SessionID,
		Conversation:      conversation,
		SessionConfigured: configured,
	}, nil
}

// GetConversation returns the shared handle for the given id.
func (m *ConversationManager) GetConversation(id uuid.UUID) (*Conversation, error) {
	m.mu.RLock()
	conversation, ok := m.conversations[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrConversationNotFound, id)
	}
	return conversation, nil
}

// RemoveConversation drops the registry entry for id. The handle stays
// valid for any holders that already have it. Removal is the host's
// call; the manager never does it implicitly.
func (m *ConversationManager) RemoveConversation(id uuid.UUID) {
	m.mu.Lock()
	delete(m.conversations, id)
	m.mu.Unlock()
}

// Len reports the number of registered conversations.
func (m *ConversationManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conversations)
}
