package compaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/youssefsiam38/agentcontext"
)

// ModelSummarizer produces summaries with a small Claude model via the
// streaming API. The transcript slice is first digested locally by a
// CompactSummarizer so only a bounded amount of text is sent; the
// response is parsed back into the Title/bullet layout and clamped to
// the character budget. Any failure falls back to the local digest so
// compaction never stalls on the network.
type ModelSummarizer struct {
	client    *anthropic.Client
	model     string
	maxTokens int
	maxChars  int
	local     *CompactSummarizer
}

// NewModelSummarizer creates a model-backed summarizer. config may be
// nil for defaults.
func NewModelSummarizer(client *anthropic.Client, config *Config) *ModelSummarizer {
	if config == nil {
		config = DefaultConfig()
	} else {
		config.ApplyDefaults()
	}
	return &ModelSummarizer{
		client:    client,
		model:     config.SummarizerModel,
		maxTokens: config.SummarizerMaxTokens,
		maxChars:  config.SummaryMaxChars,
		// The digest feeding the model gets a larger budget than the
		// final summary.
		local: NewCompactSummarizerWithFieldCap(config.SummaryMaxChars*4, config.FieldTruncateAt),
	}
}

// Summarize implements Summarizer using a background context.
func (s *ModelSummarizer) Summarize(items []agentcontext.TranscriptItem) (*Summary, error) {
	return s.SummarizeContext(context.Background(), items)
}

// SummarizeContext generates a summary for items, honoring ctx.
func (s *ModelSummarizer) SummarizeContext(ctx context.Context, items []agentcontext.TranscriptItem) (*Summary, error) {
	if len(items) == 0 {
		return nil, nil
	}

	digest, err := s.local.Summarize(items)
	if err != nil {
		return nil, err
	}
	if digest == nil {
		return nil, nil
	}

	text, err := s.complete(ctx, digest.Title+"\n"+digest.Text)
	if err != nil {
		// Transport trouble is not fatal: the local digest already is a
		// valid summary.
		return digest, nil
	}

	summary := parseModelSummary(text, s.maxChars)
	if summary == nil {
		return digest, nil
	}
	summary.ItemCount = len(items)
	return summary, nil
}

func (s *ModelSummarizer) complete(ctx context.Context, digest string) (string, error) {
	stream := s.client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: int64(s.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: SummarizationSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(BuildSummarizationUserPrompt(digest, s.maxChars))),
		},
	})

	message := anthropic.Message{}
	for stream.Next() {
		event := stream.Current()
		if err := message.Accumulate(event); err != nil {
			return "", fmt.Errorf("%w: failed to accumulate stream: %v", ErrSummarizationFailed, err)
		}
	}
	if err := stream.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummarizationFailed, err)
	}

	var out strings.Builder
	for _, block := range message.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			out.WriteString(text.Text)
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("%w: empty response from summarizer", ErrSummarizationFailed)
	}
	return out.String(), nil
}

// parseModelSummary extracts the "Title: ..." line and bullet body
// from a model response, enforcing maxChars on the body.
func parseModelSummary(content string, maxChars int) *Summary {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	title := "Earlier conversation"
	body := strings.Builder{}
	remaining := maxChars
	titleSeen := false

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !titleSeen {
			titleSeen = true
			if rest, ok := strings.CutPrefix(line, "Title:"); ok {
				title = strings.TrimSpace(rest)
			} else {
				title = line
			}
			continue
		}
		bullet := line
		if !strings.HasPrefix(bullet, "-") {
			bullet = "- " + bullet
		}
		need := len(bullet) + 1
		if need > remaining {
			break
		}
		body.WriteString(bullet)
		body.WriteByte('\n')
		remaining -= need
	}

	if body.Len() == 0 {
		body.WriteString("- Summary not available")
	}
	return &Summary{Title: title, Text: body.String()}
}
