package routing

import (
	"net/http"

	"github.com/SystemBuilders/dll/internal/store"
)

func createList(w http.ResponseWriter, r *http.Request, s *store.ListStore) {
	id := s.Create()
	writeJSON(w, http.StatusCreated, CreateRes{ID: id.String()})
}

func listIDs(w http.ResponseWriter, r *http.Request, s *store.ListStore) {
	ids := s.IDs()
	res := IDsRes{IDs: make([]string, len(ids))}
	for i, id := range ids {
		res.IDs[i] = id.String()
	}
	writeJSON(w, http.StatusOK, res)
}

func dropList(w http.ResponseWriter, r *http.Request, s *store.ListStore) {
	id, ok := listID(w, r)
	if !ok {
		return
	}
	if err := s.Drop(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
