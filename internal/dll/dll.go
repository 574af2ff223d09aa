package dll

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// DLLNode is the single entity of the doubly linked list.
//
// A node is created unlinked by NewNode and becomes linked once it is
// inserted. It is unlinked again when its key is deleted, at which point
// it no longer belongs to any list.
type DLLNode struct {
	data int
	next *DLLNode
	prev *DLLNode
	list *DoublyLinkedList
}

// NewNode returns a new unlinked node holding value.
func NewNode(value int) *DLLNode {
	return &DLLNode{
		data: value,
	}
}

// Value returns the value of the node.
func (n *DLLNode) Value() int {
	return n.data
}

// Next returns the node after the current node, nil for the tail.
func (n *DLLNode) Next() *DLLNode {
	return n.next
}

// Prev returns the node before the current node, nil for the head.
func (n *DLLNode) Prev() *DLLNode {
	return n.prev
}

// Linked reports whether the node currently belongs to a list.
func (n *DLLNode) Linked() bool {
	return n.list != nil
}

// Assert that *DoublyLinkedList implements LinkedList.
var _ LinkedList = (*DoublyLinkedList)(nil)

// DoublyLinkedList implements LinkedList.
//
// All nodes have a next and a prev link except the tail and the head
// node respectively. count is zero exactly when head and tail are nil.
type DoublyLinkedList struct {
	head  *DLLNode
	tail  *DLLNode
	count int
}

// NewDoublyLinkedList returns a new instance of an empty DoublyLinkedList.
func NewDoublyLinkedList() *DoublyLinkedList {
	return &DoublyLinkedList{}
}

// Head returns the first node of the list, nil if the list is empty.
func (dll *DoublyLinkedList) Head() *DLLNode {
	return dll.head
}

// Tail returns the last node of the list, nil if the list is empty.
func (dll *DoublyLinkedList) Tail() *DLLNode {
	return dll.tail
}

// Len returns the number of nodes in the list.
func (dll *DoublyLinkedList) Len() int {
	return dll.count
}

// Empty returns true if the list has no nodes.
func (dll *DoublyLinkedList) Empty() bool {
	return dll.count == 0
}

// Insert appends node after the current tail.
//
// A nil node is the way a failed construction propagates, it is
// rejected with ErrNilNode and the list is left untouched.
func (dll *DoublyLinkedList) Insert(node *DLLNode) error {
	if node == nil {
		return ErrNilNode
	}
	if node.list != nil {
		return ErrNodeLinked
	}

	if dll.count == 0 {
		dll.head = node
		dll.tail = node
	} else {
		node.prev = dll.tail
		dll.tail.next = node
		dll.tail = node
	}
	node.list = dll
	dll.count++
	return nil
}

// InsertUnique inserts node only if no node with the same value is
// already in the list.
func (dll *DoublyLinkedList) InsertUnique(node *DLLNode) error {
	if node == nil {
		return ErrNilNode
	}
	if node.list != nil {
		return ErrNodeLinked
	}
	if dll.Search(node.data) != nil {
		return ErrDuplicateKey
	}
	return dll.Insert(node)
}

// Search scans from the head and returns the first node holding key.
func (dll *DoublyLinkedList) Search(key int) *DLLNode {
	for curr := dll.head; curr != nil; curr = curr.next {
		if curr.data == key {
			return curr
		}
	}
	return nil
}

// Delete removes the first node holding key from the list.
//
// ErrEmptyList and ErrKeyNotFound are returned without any mutation.
func (dll *DoublyLinkedList) Delete(key int) error {
	if dll.count == 0 {
		return ErrEmptyList
	}
	target := dll.Search(key)
	if target == nil {
		return ErrKeyNotFound
	}
	dll.unlink(target)
	return nil
}

func (dll *DoublyLinkedList) unlink(target *DLLNode) {
	switch {
	case dll.count == 1:
		dll.head = nil
		dll.tail = nil
	case target == dll.head:
		dll.head = target.next
		dll.head.prev = nil
	case target == dll.tail:
		dll.tail = target.prev
		dll.tail.next = nil
	default:
		target.prev.next = target.next
		target.next.prev = target.prev
	}
	target.next = nil
	target.prev = nil
	target.list = nil
	dll.count--
}

// Clear deletes the head of the list until the list is empty.
func (dll *DoublyLinkedList) Clear() {
	for dll.head != nil {
		if err := dll.Delete(dll.head.data); err != nil {
			panic(fmt.Sprintf("clear: deleting head %d: %s", dll.head.data, err))
		}
	}
}

// Reverse swaps the links of every node and then swaps head and tail.
// Nodes keep their identity.
func (dll *DoublyLinkedList) Reverse() {
	for curr := dll.head; curr != nil; curr = curr.prev {
		curr.next, curr.prev = curr.prev, curr.next
	}
	dll.head, dll.tail = dll.tail, dll.head
}

// IterateForward calls fn for each value from head to tail. If fn
// returns false the iteration stops and IterateForward returns false.
func (dll *DoublyLinkedList) IterateForward(fn func(int) bool) bool {
	for curr := dll.head; curr != nil; curr = curr.next {
		if !fn(curr.data) {
			return false
		}
	}
	return true
}

// IterateBackward calls fn for each value from tail to head. If fn
// returns false the iteration stops and IterateBackward returns false.
func (dll *DoublyLinkedList) IterateBackward(fn func(int) bool) bool {
	for curr := dll.tail; curr != nil; curr = curr.prev {
		if !fn(curr.data) {
			return false
		}
	}
	return true
}

// Forward returns the values of the list from head to tail.
func (dll *DoublyLinkedList) Forward() []int {
	values := make([]int, 0, dll.count)
	dll.IterateForward(func(v int) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Backward returns the values of the list from tail to head.
func (dll *DoublyLinkedList) Backward() []int {
	values := make([]int, 0, dll.count)
	dll.IterateBackward(func(v int) bool {
		values = append(values, v)
		return true
	})
	return values
}

// TraverseForward writes the forward traversal of the list to w.
func (dll *DoublyLinkedList) TraverseForward(w io.Writer) error {
	return render(w, "Traverse list (Forward direction):", dll.IterateForward)
}

// TraverseBackward writes the backward traversal of the list to w.
func (dll *DoublyLinkedList) TraverseBackward(w io.Writer) error {
	return render(w, "Traverse list (Backward direction):", dll.IterateBackward)
}

func render(w io.Writer, header string, iterate func(func(int) bool) bool) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, header)
	iterate(func(v int) bool {
		fmt.Fprintf(bw, "%d ", v)
		return true
	})
	fmt.Fprintln(bw)
	return bw.Flush()
}

// PrintLinkedList prints the given linked list in both directions to stdout.
func (dll *DoublyLinkedList) PrintLinkedList() {
	dll.TraverseForward(os.Stdout)
	dll.TraverseBackward(os.Stdout)
}
