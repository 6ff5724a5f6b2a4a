package pipeline

// Status classifies the terminal state of one pair's upload.
type Status int

const (
	StatusUploaded Status = iota
	StatusTooLarge
	StatusFailed
)

// Outcome is the tagged result of one pair's processing. Created once when
// the pair finishes and never mutated.
type Outcome struct {
	Status Status
	Reason string // empty for StatusUploaded
}

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total    int // matched pairs
	Current  int // 1-based index of the pair being processed
	Missing  int // stems lacking an image or a book
	Uploaded int
	TooLarge int
	Failed   int
}
