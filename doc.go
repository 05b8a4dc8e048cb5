// Package agentcontext manages the live conversation transcript of an
// interactive coding-agent session: the transcript data model, the
// in-memory registry of running conversations, and the session-spawn
// contract the registry consumes.
//
// The transcript itself is an append-only ordered sequence of
// TranscriptItem values owned by a single session. Segmentation,
// token estimation, candidate selection, and summarization live in the
// compaction subpackage; command gating lives in the policy
// subpackage; summary persistence and embeddings live in the memory
// subpackage.
package agentcontext
