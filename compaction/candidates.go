package compaction

import (
	"github.com/youssefsiam38/agentcontext"
)

// FilterCandidates narrows volleys down to those eligible for
// summarization, preserving order:
//
//   - ranges must be non-empty and within bounds
//   - ranges containing only summary items are skipped (summaries are
//     not re-summarized)
//   - ranges that are entirely ephemeral are skipped
//
// Ephemeral items inside a mixed volley do not disqualify it. The
// result is a pure filter over the input; choosing which eligible
// volleys to actually summarize is the caller's policy.
func FilterCandidates(items []agentcontext.TranscriptItem, volleys []Volley) []Volley {
	var out []Volley
	for _, v := range volleys {
		if v.Start >= v.End || v.Start < 0 || v.End > len(items) {
			continue
		}
		hasNonSummary := false
		allEphemeral := true
		for _, item := range items[v.Start:v.End] {
			if !IsEphemeralItem(item) {
				allEphemeral = false
			}
			if !IsSummaryItem(item) {
				hasNonSummary = true
			}
		}
		if !hasNonSummary || allEphemeral {
			continue
		}
		out = append(out, v)
	}
	return out
}

// SelectOldestUntilBudget applies the usual caller policy over
// eligible volleys: take them oldest-first until summarizing the
// selection would bring the transcript's estimated tokens down to
// targetTokens or below. Returns the selected prefix of candidates;
// nil when the transcript is already within budget.
func SelectOldestUntilBudget(items []agentcontext.TranscriptItem, candidates []Volley, targetTokens int) []Volley {
	total := EstimatedTokens(items)
	if total <= targetTokens {
		return nil
	}

	var selected []Volley
	remaining := total
	for _, v := range candidates {
		if remaining <= targetTokens {
			break
		}
		remaining -= EstimatedTokens(items[v.Start:v.End])
		selected = append(selected, v)
	}
	return selected
}
