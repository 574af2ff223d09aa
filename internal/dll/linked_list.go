package dll

import "io"

// LinkedList describes a doubly linked list of integers.
//
// Implementations are not safe for concurrent use. Insert, Delete and
// Reverse update several links and the count without synchronisation,
// callers sharing a list must serialise access themselves.
type LinkedList interface {
	// Insert appends a previously created, unlinked node at the tail.
	// No uniqueness check is performed.
	Insert(node *DLLNode) error
	// InsertUnique is Insert, but rejects a node whose value is already
	// present in the list.
	InsertUnique(node *DLLNode) error
	// Search returns the first node from the head whose value equals
	// key, or nil if there is none.
	Search(key int) *DLLNode
	// Delete unlinks the first node whose value equals key.
	Delete(key int) error
	// Clear deletes every node in the list.
	Clear()
	// Reverse reverses the order of the list in place.
	Reverse()
	// Forward returns the values from head to tail.
	Forward() []int
	// Backward returns the values from tail to head.
	Backward() []int
	// TraverseForward writes the forward traversal to w.
	TraverseForward(w io.Writer) error
	// TraverseBackward writes the backward traversal to w.
	TraverseBackward(w io.Writer) error
	// Len returns the number of linked nodes.
	Len() int
}
