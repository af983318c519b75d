package search

// Query is a search request against the note index.
type Query struct {
	// Term is matched case-insensitively against titles, then content.
	Term string
	// Folder restricts results to one folder id. Empty or "all" searches
	// every note.
	Folder string
}

// Result is one matching note.
type Result struct {
	NoteID    string
	Title     string
	Snippet   string
	MatchFrom string
}
