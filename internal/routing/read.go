package routing

import (
	"net/http"
	"strconv"

	"github.com/SystemBuilders/dll/internal/store"
	"github.com/oklog/ulid"
)

func search(w http.ResponseWriter, r *http.Request, s *store.ListStore) {
	id, ok := listID(w, r)
	if !ok {
		return
	}
	key, err := strconv.Atoi(r.URL.Query().Get("key"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	found, err := s.Search(id, key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SearchRes{Found: found})
}

func forward(w http.ResponseWriter, r *http.Request, s *store.ListStore) {
	traverse(w, r, s.Forward)
}

func backward(w http.ResponseWriter, r *http.Request, s *store.ListStore) {
	traverse(w, r, s.Backward)
}

func traverse(w http.ResponseWriter, r *http.Request, values func(ulid.ULID) ([]int, error)) {
	id, ok := listID(w, r)
	if !ok {
		return
	}
	vs, err := values(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ValuesRes{Values: vs})
}
