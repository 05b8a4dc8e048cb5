package agentcontext

import (
	"fmt"
	"os"
)

// AuthMode selects which credential kind to load for a session.
type AuthMode string

const (
	// AuthModeAPIKey uses a provider API key.
	AuthModeAPIKey AuthMode = "api-key"

	// AuthModeChatGPT uses an interactive-login token when the user is
	// signed in; preferred for main model calls when available.
	AuthModeChatGPT AuthMode = "chatgpt"
)

// Auth is an opaque credential handed to the Spawner.
type Auth struct {
	Mode  AuthMode
	Token string
}

// AuthLoader acquires credentials for a session. Implementations may
// read from disk or the environment; loading happens before the
// session is spawned and is the only I/O the registry performs itself.
type AuthLoader interface {
	Load(home string, mode AuthMode) (*Auth, error)
}

// EnvAuthLoader loads an API key from an environment variable.
// It serves both auth modes with the same token.
type EnvAuthLoader struct {
	// Var is the environment variable name. Defaults to
	// ANTHROPIC_API_KEY when empty.
	Var string
}

// Load implements AuthLoader.
func (l EnvAuthLoader) Load(home string, mode AuthMode) (*Auth, error) {
	name := l.Var
	if name == "" {
		name = "ANTHROPIC_API_KEY"
	}
	token := os.Getenv(name)
	if token == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrAuthUnavailable, name)
	}
	return &Auth{Mode: mode, Token: token}, nil
}
