package agentcontext

// Config holds per-conversation configuration handed to the Spawner.
type Config struct {
	// Home is the runtime home directory credentials are loaded from.
	Home string

	// UsingChatGPTAuth prefers interactive-login auth for main model
	// calls when the user is signed in.
	UsingChatGPTAuth bool

	// Model is the model identifier to configure the session with.
	Model string

	// Cwd is the working directory the session operates in.
	Cwd string

	// Metadata holds host-specific settings the core does not inspect.
	Metadata map[string]any
}

// Validate checks the fields the registry depends on.
func (c *Config) Validate() error {
	if c == nil {
		return ErrInvalidConfig
	}
	return nil
}
