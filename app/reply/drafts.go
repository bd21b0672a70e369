package reply

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Entry is one draft ready to be sent: a comment id and its trimmed text.
type Entry struct {
	CommentID string
	Text      string
}

// Batch is an immutable snapshot of the drafts taken when a bulk send starts.
type Batch []Entry

// CommentIDs returns the comment ids of the batch in batch order.
func (b Batch) CommentIDs() []string {
	ids := make([]string, len(b))
	for i, e := range b {
		ids[i] = e.CommentID
	}
	return ids
}

// Drafts holds the operator's unsent reply text per comment id for the
// comments currently displayed. It lives only for the current session.
type Drafts struct {
	entries map[string]string
}

// NewDrafts returns an empty draft store.
func NewDrafts() Drafts {
	return Drafts{entries: make(map[string]string)}
}

// Set stores text as the draft for commentID. Blank text is accepted and
// simply never sent.
func (d *Drafts) Set(commentID, text string) {
	if d.entries == nil {
		d.entries = make(map[string]string)
	}
	d.entries[commentID] = text
}

// Get returns the raw draft text for commentID.
func (d Drafts) Get(commentID string) string {
	return d.entries[commentID]
}

// Clear drops the draft for commentID.
func (d *Drafts) Clear(commentID string) {
	delete(d.entries, commentID)
}

// ClearAll discards every draft. Called when the active media changes.
func (d *Drafts) ClearAll() {
	clear(d.entries)
}

// Len returns the number of stored entries, blank ones included.
func (d Drafts) Len() int {
	return len(d.entries)
}

// NonEmpty yields (commentID, trimmedText) for every draft whose trimmed text
// is not empty. The sequence reads the live store and can be ranged again.
func (d Drafts) NonEmpty() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for id, text := range d.entries {
			trimmed := strings.TrimSpace(text)
			if trimmed == "" {
				continue
			}
			if !yield(id, trimmed) {
				return
			}
		}
	}
}

// HasPending reports whether at least one draft would be sent.
func (d Drafts) HasPending() bool {
	for range d.NonEmpty() {
		return true
	}
	return false
}

// Snapshot copies the sendable drafts into a Batch ordered by comment id.
func (d Drafts) Snapshot() Batch {
	texts := maps.Collect(d.NonEmpty())
	if len(texts) == 0 {
		return nil
	}
	b := make(Batch, 0, len(texts))
	for _, id := range slices.Sorted(maps.Keys(texts)) {
		b = append(b, Entry{CommentID: id, Text: texts[id]})
	}
	return b
}

// ClearBatch drops the drafts of every comment in b, whatever was typed into
// them after the snapshot was taken. Drafts of other comments are kept.
func (d *Drafts) ClearBatch(b Batch) {
	for _, e := range b {
		delete(d.entries, e.CommentID)
	}
}
