// Package compaction decides what to summarize and when for a
// conversation transcript.
//
// The pipeline is pure until the summarizer runs: classifier
// predicates recognize summary and ephemeral items, the segmenter
// partitions the transcript into volleys (user-initiated ranges), the
// token estimator prices slices in a deterministic chars/4 currency,
// and the candidate selector filters volleys down to those eligible
// for summarization. Summarizers then collapse chosen ranges into a
// single compact text block; the Pruner ties the pieces together for
// the common keep-last-N policy.
//
// Summary items carry the "[memory:" prefix so they survive
// serialization round-trips through the model and are never
// re-summarized. Ephemeral items carry "[EPHEMERAL:" and never count
// as signal on their own.
package compaction
