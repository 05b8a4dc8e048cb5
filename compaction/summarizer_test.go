package compaction

import (
	"errors"
	"strings"
	"testing"

	"github.com/youssefsiam38/agentcontext"
)

func boolPtr(b bool) *bool { return &b }

func TestCompactSummarizerIncludesCallsOutputsAndShell(t *testing.T) {
	items := []agentcontext.TranscriptItem{
		msg(agentcontext.RoleUser, "please run echo hi"),
		agentcontext.NewFunctionCall("shell", "{}", "c1"),
		agentcontext.NewLocalShellCall("c1", agentcontext.ShellStatusCompleted,
			agentcontext.LocalShellExecAction{Command: []string{"echo", "hi"}}),
		agentcontext.NewFunctionCallOutput("c1", "hi", boolPtr(true)),
		msg(agentcontext.RoleAssistant, "done"),
	}

	s := NewCompactSummarizer(400)
	out, err := s.Summarize(items)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if out == nil {
		t.Fatal("Summarize() returned no summary")
	}
	if out.ItemCount != len(items) {
		t.Errorf("ItemCount = %d, want %d", out.ItemCount, len(items))
	}

	for _, want := range []string{
		"User: please run echo hi",
		"Call: shell",
		"Shell: echo hi",
		"Result(ok): hi",
		"Assistant: done",
	} {
		if !strings.Contains(out.Text, want) {
			t.Errorf("summary text missing %q:\n%s", want, out.Text)
		}
	}
}

func TestCompactSummarizerTruncatesLongShellAndOutput(t *testing.T) {
	longTail := strings.Repeat("a", 200)
	longOutput := strings.Repeat("y", 200)
	items := []agentcontext.TranscriptItem{
		agentcontext.NewLocalShellCall("c2", agentcontext.ShellStatusCompleted,
			agentcontext.LocalShellExecAction{Command: []string{"echo", longTail}}),
		agentcontext.NewFunctionCallOutput("c2", longOutput, boolPtr(false)),
	}

	s := NewCompactSummarizer(400)
	out, err := s.Summarize(items)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if out == nil {
		t.Fatal("Summarize() returned no summary")
	}
	if !strings.Contains(out.Text, "Shell: echo ") {
		t.Errorf("summary missing shell prefix:\n%s", out.Text)
	}
	if !strings.Contains(out.Text, "Result(err): ") {
		t.Errorf("summary missing error result prefix:\n%s", out.Text)
	}
	if !strings.Contains(out.Text, Ellipsis) {
		t.Errorf("summary missing truncation marker:\n%s", out.Text)
	}
}

func TestCompactSummarizerEdgeCases(t *testing.T) {
	s := NewCompactSummarizer(400)

	t.Run("empty input is not an error", func(t *testing.T) {
		out, err := s.Summarize(nil)
		if err != nil {
			t.Fatalf("Summarize(nil) error: %v", err)
		}
		if out != nil {
			t.Errorf("Summarize(nil) = %v, want nil", out)
		}
	})

	t.Run("ephemeral text is skipped", func(t *testing.T) {
		items := []agentcontext.TranscriptItem{
			msg(agentcontext.RoleAssistant, "[EPHEMERAL: screenshot]"),
			msg(agentcontext.RoleUser, "keep this"),
		}
		out, err := s.Summarize(items)
		if err != nil {
			t.Fatalf("Summarize() error: %v", err)
		}
		if out == nil || strings.Contains(out.Text, "EPHEMERAL") {
			t.Errorf("ephemeral content leaked into summary: %v", out)
		}
	})

	t.Run("system role contributes nothing", func(t *testing.T) {
		out, err := s.Summarize([]agentcontext.TranscriptItem{
			msg(agentcontext.RoleSystem, "system prompt"),
		})
		if err != nil {
			t.Fatalf("Summarize() error: %v", err)
		}
		if out != nil {
			t.Errorf("expected no summary for system-only slice, got %v", out)
		}
	})

	t.Run("empty shell command is marked", func(t *testing.T) {
		out, err := s.Summarize([]agentcontext.TranscriptItem{
			agentcontext.NewLocalShellCall("c3", agentcontext.ShellStatusPending,
				agentcontext.LocalShellExecAction{}),
		})
		if err != nil {
			t.Fatalf("Summarize() error: %v", err)
		}
		if out == nil || !strings.Contains(out.Text, "Shell: <empty>") {
			t.Errorf("expected <empty> marker, got %v", out)
		}
	})

	t.Run("empty output is marked", func(t *testing.T) {
		out, err := s.Summarize([]agentcontext.TranscriptItem{
			agentcontext.NewFunctionCallOutput("c4", "", nil),
		})
		if err != nil {
			t.Fatalf("Summarize() error: %v", err)
		}
		if out == nil || !strings.Contains(out.Text, "Result(n/a): <no output>") {
			t.Errorf("expected <no output> marker, got %v", out)
		}
	})
}

func TestCompactSummarizerMalformedContent(t *testing.T) {
	s := NewCompactSummarizer(400)

	tests := []struct {
		name string
		item agentcontext.TranscriptItem
	}{
		{
			name: "output without payload",
			item: agentcontext.TranscriptItem{
				Type:   agentcontext.ItemTypeFunctionCallOutput,
				CallID: "c1",
			},
		},
		{
			name: "shell call without action",
			item: agentcontext.TranscriptItem{
				Type:   agentcontext.ItemTypeLocalShellCall,
				CallID: "c2",
			},
		},
		{
			name: "message block without type",
			item: agentcontext.NewMessage(agentcontext.RoleUser, agentcontext.ContentBlock{Text: "x"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Summarize([]agentcontext.TranscriptItem{tt.item})
			if !errors.Is(err, ErrMalformedContent) {
				t.Errorf("Summarize() error = %v, want ErrMalformedContent", err)
			}
			var serr *SummarizerError
			if !errors.As(err, &serr) {
				t.Errorf("Summarize() error = %T, want *SummarizerError", err)
			}
		})
	}
}

func TestCompactSummarizerBodyBudget(t *testing.T) {
	var items []agentcontext.TranscriptItem
	for i := 0; i < 50; i++ {
		items = append(items, msg(agentcontext.RoleUser, strings.Repeat("word ", 10)))
	}

	s := NewCompactSummarizer(100)
	out, err := s.Summarize(items)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if out == nil {
		t.Fatal("Summarize() returned no summary")
	}
	if len(out.Text) > 100+len(" ...\n") {
		t.Errorf("body exceeds budget: %d chars", len(out.Text))
	}
	if !strings.Contains(out.Text, " ...") {
		t.Errorf("expected truncated final bullet, got:\n%s", out.Text)
	}
}

func TestCompactSummarizerCommandPreview(t *testing.T) {
	items := []agentcontext.TranscriptItem{
		agentcontext.NewFunctionCall("shell", `{"command":["echo","hi"]}`, "c1"),
	}
	s := NewCompactSummarizer(400)
	out, err := s.Summarize(items)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if out == nil || !strings.Contains(out.Text, "Call: shell echo hi") {
		t.Errorf("expected command preview in call line, got %v", out)
	}
}

func TestNoopSummarizer(t *testing.T) {
	out, err := NoopSummarizer{}.Summarize([]agentcontext.TranscriptItem{
		msg(agentcontext.RoleUser, "anything"),
	})
	if err != nil || out != nil {
		t.Errorf("NoopSummarizer.Summarize() = (%v, %v), want (nil, nil)", out, err)
	}
}
