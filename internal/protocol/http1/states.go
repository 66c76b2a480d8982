package http1

// State is the outcome of a single Scan call.
type State uint8

const (
	// Pending means there are not enough bytes to decide yet. The caller must retry from the
	// same position once more data arrives.
	Pending State = iota + 1
	// Complete means a whole request was recognized.
	Complete
	// Error means the data doesn't match the request grammar. The stream can't be recovered.
	Error
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Complete:
		return "complete"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}
