package agentcontext

// Transcript is the append-only, ordered record of a single session's
// conversation. It is owned by its session: callers must provide their
// own synchronization before sharing one across goroutines.
type Transcript struct {
	items []TranscriptItem
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Record appends items in order. Indices of previously recorded items
// are stable for the life of the transcript.
func (t *Transcript) Record(items ...TranscriptItem) {
	t.items = append(t.items, items...)
}

// Len returns the number of recorded items.
func (t *Transcript) Len() int {
	return len(t.items)
}

// Contents returns a copy of the recorded items. The copy is a
// consistent snapshot: segmentation and selection operate on it
// without being affected by later appends.
func (t *Transcript) Contents() []TranscriptItem {
	out := make([]TranscriptItem, len(t.items))
	copy(out, t.items)
	return out
}

// KeepLastMessages truncates the transcript to the suffix that holds
// the last n message items. Non-message items before that suffix are
// dropped with the prefix; call/output pairs inside it are retained.
func (t *Transcript) KeepLastMessages(n int) {
	if n <= 0 {
		t.items = nil
		return
	}
	seen := 0
	cut := 0
	for i := len(t.items) - 1; i >= 0; i-- {
		if t.items[i].Type == ItemTypeMessage {
			seen++
			if seen == n {
				cut = i
				break
			}
		}
	}
	if seen < n {
		return
	}
	t.items = append([]TranscriptItem(nil), t.items[cut:]...)
}
