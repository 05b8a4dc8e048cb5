package agentcontext

// ItemType discriminates the closed set of transcript item variants.
type ItemType string

const (
	// ItemTypeMessage is a user/assistant/system message with content blocks.
	ItemTypeMessage ItemType = "message"

	// ItemTypeFunctionCall is a model-initiated tool invocation.
	ItemTypeFunctionCall ItemType = "function_call"

	// ItemTypeFunctionCallOutput is the result payload for a prior call.
	ItemTypeFunctionCallOutput ItemType = "function_call_output"

	// ItemTypeLocalShellCall is a shell execution performed on the host.
	ItemTypeLocalShellCall ItemType = "local_shell_call"
)

// MessageRole identifies the author of a message item.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// Content block types. Blocks the core does not recognize as text
// (images, tool artifacts) contribute nothing to classification or
// token estimation.
const (
	ContentTypeInputText  = "input_text"
	ContentTypeOutputText = "output_text"
	ContentTypeImage      = "image"
	ContentTypeArtifact   = "artifact"
)

// ContentBlock is a single content block within a message item.
// Different fields are populated based on the Type.
type ContentBlock struct {
	Type string `json:"type"`

	// Text content (for ContentTypeInputText, ContentTypeOutputText)
	Text string `json:"text,omitempty"`

	// Opaque payload for non-text blocks.
	Source []byte `json:"source,omitempty"`
}

// IsText reports whether the block carries inline text.
func (b ContentBlock) IsText() bool {
	return b.Type == ContentTypeInputText || b.Type == ContentTypeOutputText
}

// LocalShellStatus is the lifecycle state of a local shell call.
type LocalShellStatus string

const (
	ShellStatusPending   LocalShellStatus = "pending"
	ShellStatusRunning   LocalShellStatus = "running"
	ShellStatusCompleted LocalShellStatus = "completed"
	ShellStatusFailed    LocalShellStatus = "failed"
)

// LocalShellExecAction describes the exec request of a local shell call.
type LocalShellExecAction struct {
	Command          []string          `json:"command"`
	TimeoutMS        *int64            `json:"timeout_ms,omitempty"`
	WorkingDirectory *string           `json:"working_directory,omitempty"`
	Env              map[string]string `json:"env,omitempty"`
	User             *string           `json:"user,omitempty"`
}

// FunctionCallOutputPayload carries the content of a tool result.
// Success is nil when the tool did not report an outcome.
type FunctionCallOutputPayload struct {
	Content string `json:"content"`
	Success *bool  `json:"success,omitempty"`
}

// TranscriptItem is one entry in a conversation transcript. It is a
// tagged variant: Type selects which of the case-specific fields are
// populated. Items are created by callers, appended to a transcript,
// and never mutated in place.
type TranscriptItem struct {
	Type ItemType `json:"type"`

	// Optional provider-assigned identifier (message and call variants).
	ID string `json:"id,omitempty"`

	// Message fields
	Role    MessageRole    `json:"role,omitempty"`
	Content []ContentBlock `json:"content,omitempty"`

	// Function call fields. Arguments is opaque JSON text.
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
	CallID    string `json:"call_id,omitempty"`

	// Function call output fields. Output.CallID lives in CallID above.
	Output *FunctionCallOutputPayload `json:"output,omitempty"`

	// Local shell call fields
	Status LocalShellStatus      `json:"status,omitempty"`
	Action *LocalShellExecAction `json:"action,omitempty"`
}

// NewMessage builds a message item from pre-built content blocks.
func NewMessage(role MessageRole, content ...ContentBlock) TranscriptItem {
	return TranscriptItem{Type: ItemTypeMessage, Role: role, Content: content}
}

// NewTextMessage builds a message item with a single output text block.
func NewTextMessage(role MessageRole, text string) TranscriptItem {
	return NewMessage(role, ContentBlock{Type: ContentTypeOutputText, Text: text})
}

// NewInputTextMessage builds a message item with a single input text block.
func NewInputTextMessage(role MessageRole, text string) TranscriptItem {
	return NewMessage(role, ContentBlock{Type: ContentTypeInputText, Text: text})
}

// NewFunctionCall builds a function call item. arguments is opaque JSON.
func NewFunctionCall(name, arguments, callID string) TranscriptItem {
	return TranscriptItem{
		Type:      ItemTypeFunctionCall,
		Name:      name,
		Arguments: arguments,
		CallID:    callID,
	}
}

// NewFunctionCallOutput builds the result item for a prior call.
func NewFunctionCallOutput(callID, content string, success *bool) TranscriptItem {
	return TranscriptItem{
		Type:   ItemTypeFunctionCallOutput,
		CallID: callID,
		Output: &FunctionCallOutputPayload{Content: content, Success: success},
	}
}

// NewLocalShellCall builds a local shell call item for an exec action.
func NewLocalShellCall(callID string, status LocalShellStatus, action LocalShellExecAction) TranscriptItem {
	return TranscriptItem{
		Type:   ItemTypeLocalShellCall,
		CallID: callID,
		Status: status,
		Action: &action,
	}
}
