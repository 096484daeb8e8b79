package history

// Entry is one line of the modification history: a human-readable
// description of who did what to whom, stamped with the local time it
// happened. The log is append-only; entries are never edited or removed.
type Entry struct {
	ID        string
	Action    string
	Timestamp string
}
