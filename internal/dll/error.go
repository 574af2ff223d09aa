package dll

// Error provides constant error strings to the list operations.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrNilNode      = Error("node is nil, can't be inserted")
	ErrNodeLinked   = Error("node is already linked into a list")
	ErrKeyNotFound  = Error("key doesn't exist in the list")
	ErrEmptyList    = Error("list is empty")
	ErrDuplicateKey = Error("key already exists in the list")
)
