package chat

// NoteBuffer holds SOAP notes drafted during the current chat turn until the
// orchestrator flushes them to storage. A session owns one buffer; it is
// drained at the end of every turn and never survives a turn unpersisted.
// Not safe for concurrent use; a session has a single writer.
type NoteBuffer struct {
	notes []string
}

func NewNoteBuffer() *NoteBuffer {
	return &NoteBuffer{}
}

// Add appends a drafted note.
func (b *NoteBuffer) Add(note string) {
	b.notes = append(b.notes, note)
}

// Drain returns the buffered notes and clears the buffer.
func (b *NoteBuffer) Drain() []string {
	notes := b.notes
	b.notes = nil
	return notes
}

// Len reports the number of buffered notes.
func (b *NoteBuffer) Len() int {
	return len(b.notes)
}
