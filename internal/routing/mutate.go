package routing

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/SystemBuilders/dll/internal/store"
)

// maxBodyBytes caps the size of a request body.
const maxBodyBytes = 4 << 10

// insert wraps the store Insert function and creates a clean HTTP service.
func insert(w http.ResponseWriter, r *http.Request, s *store.ListStore) {
	id, ok := listID(w, r)
	if !ok {
		return
	}

	var req InsertRequest
	if !decode(w, r, &req) {
		return
	}

	n, err := s.Insert(id, req.Value, req.Unique)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LenRes{Len: n})
}

func deleteKey(w http.ResponseWriter, r *http.Request, s *store.ListStore) {
	id, ok := listID(w, r)
	if !ok {
		return
	}

	var req DeleteRequest
	if !decode(w, r, &req) {
		return
	}

	n, err := s.Delete(id, req.Key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LenRes{Len: n})
}

func clearList(w http.ResponseWriter, r *http.Request, s *store.ListStore) {
	id, ok := listID(w, r)
	if !ok {
		return
	}
	if err := s.Clear(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LenRes{Len: 0})
}

func reverse(w http.ResponseWriter, r *http.Request, s *store.ListStore) {
	id, ok := listID(w, r)
	if !ok {
		return
	}
	values, err := s.Reverse(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ValuesRes{Values: values})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		code := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			code = http.StatusRequestEntityTooLarge
		}
		http.Error(w, err.Error(), code)
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
