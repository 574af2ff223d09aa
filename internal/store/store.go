package store

import (
	"io"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/SystemBuilders/dll/internal/dll"
	"github.com/oklog/ulid"
	"github.com/rs/zerolog"
)

// ListStore keeps a set of independent lists addressed by ULID.
//
// A DoublyLinkedList is not safe for concurrent mutation, so every
// operation on a stored list runs under the store's mutex.
type ListStore struct {
	log     zerolog.Logger
	mu      sync.Mutex
	lists   map[ulid.ULID]*dll.DoublyLinkedList
	entropy io.Reader
}

// NewListStore creates and returns an empty store ready to use.
func NewListStore(log zerolog.Logger) *ListStore {
	return &ListStore{
		log:     log,
		lists:   make(map[ulid.ULID]*dll.DoublyLinkedList),
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// Create adds a new empty list to the store and returns its ID.
func (s *ListStore) Create() ulid.ULID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy)
	s.lists[id] = dll.NewDoublyLinkedList()
	s.
		log.
		Debug().
		Str("list", id.String()).
		Msg("created")
	return id
}

// Drop removes the list with the given ID from the store.
func (s *ListStore) Drop(id ulid.ULID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[id]; !ok {
		return ErrListDoesntExist
	}
	delete(s.lists, id)
	s.
		log.
		Debug().
		Str("list", id.String()).
		Msg("dropped")
	return nil
}

// IDs returns the IDs of all stored lists in creation order.
func (s *ListStore) IDs() []ulid.ULID {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]ulid.ULID, 0, len(s.lists))
	for id := range s.lists {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Compare(ids[j]) < 0 })
	return ids
}

// Insert appends value to the tail of the list and returns the new
// length. If unique is set, a value already present is rejected with
// dll.ErrDuplicateKey.
func (s *ListStore) Insert(id ulid.ULID, value int, unique bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.get(id)
	if err != nil {
		return 0, err
	}
	if unique {
		err = l.InsertUnique(dll.NewNode(value))
	} else {
		err = l.Insert(dll.NewNode(value))
	}
	if err != nil {
		s.
			log.
			Debug().
			Str("list", id.String()).
			Int("value", value).
			Err(err).
			Msg("can't insert")
		return 0, err
	}
	s.
		log.
		Debug().
		Str("list", id.String()).
		Int("value", value).
		Msg("inserted")
	return l.Len(), nil
}

// Search reports whether key is held by the list.
func (s *ListStore) Search(id ulid.ULID, key int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.get(id)
	if err != nil {
		return false, err
	}
	found := l.Search(key) != nil
	s.
		log.
		Debug().
		Str("list", id.String()).
		Int("key", key).
		Bool("found", found).
		Msg("searched")
	return found, nil
}

// Delete removes the first node holding key from the list and returns
// the new length.
func (s *ListStore) Delete(id ulid.ULID, key int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.get(id)
	if err != nil {
		return 0, err
	}
	if err := l.Delete(key); err != nil {
		s.
			log.
			Debug().
			Str("list", id.String()).
			Int("key", key).
			Err(err).
			Msg("can't delete")
		return 0, err
	}
	s.
		log.
		Debug().
		Str("list", id.String()).
		Int("key", key).
		Msg("deleted")
	return l.Len(), nil
}

// Clear empties the list.
func (s *ListStore) Clear(id ulid.ULID) error {
	return s.apply(id, "cleared", (*dll.DoublyLinkedList).Clear)
}

// Reverse reverses the list in place and returns its new forward order.
func (s *ListStore) Reverse(id ulid.ULID) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.get(id)
	if err != nil {
		return nil, err
	}
	l.Reverse()
	s.
		log.
		Debug().
		Str("list", id.String()).
		Int("len", l.Len()).
		Msg("reversed")
	return l.Forward(), nil
}

// Forward returns the values of the list from head to tail.
func (s *ListStore) Forward(id ulid.ULID) ([]int, error) {
	return s.values(id, (*dll.DoublyLinkedList).Forward)
}

// Backward returns the values of the list from tail to head.
func (s *ListStore) Backward(id ulid.ULID) ([]int, error) {
	return s.values(id, (*dll.DoublyLinkedList).Backward)
}

// Len returns the number of values in the list.
func (s *ListStore) Len(id ulid.ULID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.get(id)
	if err != nil {
		return 0, err
	}
	return l.Len(), nil
}

func (s *ListStore) apply(id ulid.ULID, msg string, fn func(*dll.DoublyLinkedList)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.get(id)
	if err != nil {
		return err
	}
	fn(l)
	s.
		log.
		Debug().
		Str("list", id.String()).
		Int("len", l.Len()).
		Msg(msg)
	return nil
}

func (s *ListStore) values(id ulid.ULID, fn func(*dll.DoublyLinkedList) []int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return fn(l), nil
}

// get must be called with s.mu held.
func (s *ListStore) get(id ulid.ULID) (*dll.DoublyLinkedList, error) {
	l, ok := s.lists[id]
	if !ok {
		s.
			log.
			Debug().
			Str("list", id.String()).
			Msg("list doesn't exist")
		return nil, ErrListDoesntExist
	}
	return l, nil
}
