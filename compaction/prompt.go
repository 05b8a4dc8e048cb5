package compaction

import "fmt"

// SummarizationSystemPrompt instructs the model to emit the title/bullet
// layout the summary parser expects.
const SummarizationSystemPrompt = `You are an expert assistant that writes very concise conversation summaries.
Produce: first line starting with 'Title: ' followed by a very short title.
Then up to 6 bullets starting with '- ' covering key points: user intent,
decisions taken, commands run and their outcomes, and open follow-ups.
No code blocks.`

// BuildSummarizationUserPrompt wraps the conversation digest with the
// character budget instruction.
func BuildSummarizationUserPrompt(digest string, maxChars int) string {
	return fmt.Sprintf("Keep the entire output under %d characters.\n\n<conversation>\n%s\n</conversation>", maxChars, digest)
}
