package compaction

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/youssefsiam38/agentcontext"
)

// Ellipsis marks truncated shell tails and output bodies.
const Ellipsis = "…"

// Summary is a concise summary of a span of transcript items.
// ItemCount records how many items the span held.
type Summary struct {
	Title     string
	Text      string
	ItemCount int
}

// Summarizer produces a single compact text block from a contiguous
// slice of transcript items. A nil summary with a nil error means the
// slice held nothing worth keeping; an error is returned only when a
// content block is malformed or a backend call fails.
type Summarizer interface {
	Summarize(items []agentcontext.TranscriptItem) (*Summary, error)
}

// NoopSummarizer never produces a summary. Used in tests and when
// memory is disabled.
type NoopSummarizer struct{}

// Summarize implements Summarizer.
func (NoopSummarizer) Summarize(items []agentcontext.TranscriptItem) (*Summary, error) {
	return nil, nil
}

// CompactSummarizer compresses transcript items into a short,
// human-readable summary without calling a model. It is deterministic
// so it can run in restricted environments: one compact line per item,
// a per-field truncation cap for shell tails and output bodies, and a
// character budget for the whole body.
type CompactSummarizer struct {
	maxChars int
	fieldCap int
}

// NewCompactSummarizer creates a summarizer with the given body budget
// and the default per-field cap.
func NewCompactSummarizer(maxChars int) *CompactSummarizer {
	return &CompactSummarizer{maxChars: maxChars, fieldCap: DefaultFieldTruncateAt}
}

// NewCompactSummarizerWithFieldCap also sets the per-field cap applied
// to shell command tails and function output bodies.
func NewCompactSummarizerWithFieldCap(maxChars, fieldCap int) *CompactSummarizer {
	return &CompactSummarizer{maxChars: maxChars, fieldCap: fieldCap}
}

// Summarize implements Summarizer.
func (s *CompactSummarizer) Summarize(items []agentcontext.TranscriptItem) (*Summary, error) {
	if len(items) == 0 || s.maxChars == 0 {
		return nil, nil
	}

	lines, err := s.digestLines(items)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	title := "Earlier conversation"
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			title = line
			break
		}
	}
	if len(title) > 80 {
		title = title[:80]
	}

	body := s.renderBullets(lines)
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}

	return &Summary{Title: title, Text: body, ItemCount: len(items)}, nil
}

// digestLines produces one compact line per interesting item, in
// transcript order.
func (s *CompactSummarizer) digestLines(items []agentcontext.TranscriptItem) ([]string, error) {
	var lines []string
	for _, item := range items {
		switch item.Type {
		case agentcontext.ItemTypeMessage:
			line, err := s.messageLine(item)
			if err != nil {
				return nil, err
			}
			if line != "" {
				lines = append(lines, line)
			}

		case agentcontext.ItemTypeFunctionCall:
			line := fmt.Sprintf("Call: %s", item.Name)
			if preview := commandPreview(item.Arguments); preview != "" {
				line += " " + truncateField(preview, s.fieldCap)
			}
			lines = append(lines, line)

		case agentcontext.ItemTypeFunctionCallOutput:
			if item.Output == nil {
				return nil, NewSummarizerError("Summarize",
					fmt.Errorf("%w: function call output %q has no payload", ErrMalformedContent, item.CallID))
			}
			status := "n/a"
			if item.Output.Success != nil {
				if *item.Output.Success {
					status = "ok"
				} else {
					status = "err"
				}
			}
			excerpt := truncateField(item.Output.Content, s.fieldCap)
			if excerpt == "" {
				excerpt = "<no output>"
			}
			lines = append(lines, fmt.Sprintf("Result(%s): %s", status, excerpt))

		case agentcontext.ItemTypeLocalShellCall:
			if item.Action == nil {
				return nil, NewSummarizerError("Summarize",
					fmt.Errorf("%w: local shell call %q has no action", ErrMalformedContent, item.CallID))
			}
			cmd := truncateField(strings.Join(item.Action.Command, " "), s.fieldCap)
			if cmd == "" {
				cmd = "<empty>"
			}
			lines = append(lines, fmt.Sprintf("Shell: %s", cmd))
		}
	}
	return lines, nil
}

// messageLine renders a user/assistant message as a single normalized
// line, skipping ephemeral markers. Other roles yield nothing.
func (s *CompactSummarizer) messageLine(item agentcontext.TranscriptItem) (string, error) {
	var text strings.Builder
	for _, block := range item.Content {
		if block.Type == "" {
			return "", NewSummarizerError("Summarize",
				fmt.Errorf("%w: message block without type", ErrMalformedContent))
		}
		if !block.IsText() {
			continue
		}
		if strings.HasPrefix(block.Text, EphemeralPrefix) {
			continue
		}
		if text.Len() > 0 {
			text.WriteByte(' ')
		}
		text.WriteString(strings.TrimSpace(block.Text))
	}
	if text.Len() == 0 {
		return "", nil
	}

	var prefix string
	switch item.Role {
	case agentcontext.RoleUser:
		prefix = "User"
	case agentcontext.RoleAssistant:
		prefix = "Assistant"
	default:
		return "", nil
	}

	normalized := strings.Join(strings.Fields(text.String()), " ")
	return fmt.Sprintf("%s: %s", prefix, normalized), nil
}

// renderBullets emits "- line" bullets within the character budget,
// truncating the last bullet with a visible marker when it does not fit.
func (s *CompactSummarizer) renderBullets(lines []string) string {
	remaining := s.maxChars
	var body strings.Builder
	for _, line := range lines {
		if remaining == 0 {
			break
		}
		bullet := "- " + line
		need := len(bullet) + 1
		if need <= remaining {
			body.WriteString(bullet)
			body.WriteByte('\n')
			remaining -= need
		} else if remaining > 4 {
			take := remaining - 4
			body.WriteString(truncateRunes(bullet, take))
			body.WriteString(" ...\n")
			remaining = 0
			break
		} else {
			break
		}
	}
	return body.String()
}

// commandPreview pulls a human-readable command out of opaque function
// call arguments. Tool payloads commonly carry either a "command"
// array or string; anything else yields nothing.
func commandPreview(arguments string) string {
	if arguments == "" {
		return ""
	}
	cmd := gjson.Get(arguments, "command")
	switch {
	case cmd.IsArray():
		parts := make([]string, 0, len(cmd.Array()))
		for _, p := range cmd.Array() {
			parts = append(parts, p.String())
		}
		return strings.Join(parts, " ")
	case cmd.Type == gjson.String:
		return cmd.String()
	}
	return ""
}

// truncateField caps s at max runes, appending the ellipsis marker
// when anything was cut.
func truncateField(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + Ellipsis
}

// truncateRunes caps s at max runes with no marker.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
