package routing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SystemBuilders/dll/internal/dll"
	"github.com/SystemBuilders/dll/internal/store"
	"github.com/gorilla/mux"
	"github.com/oklog/ulid"
)

// SetupRouting adds all the routes on the http server.
func SetupRouting(s *store.ListStore, r *mux.Router) *mux.Router {
	r.HandleFunc("/lists", makeHandler(s, createList)).Methods(http.MethodPost)
	r.HandleFunc("/lists", makeHandler(s, listIDs)).Methods(http.MethodGet)
	r.HandleFunc("/lists/{id}", makeHandler(s, dropList)).Methods(http.MethodDelete)
	r.HandleFunc("/lists/{id}/insert", makeHandler(s, insert)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}/search", makeHandler(s, search)).Methods(http.MethodGet)
	r.HandleFunc("/lists/{id}/delete", makeHandler(s, deleteKey)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}/clear", makeHandler(s, clearList)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}/reverse", makeHandler(s, reverse)).Methods(http.MethodPost)
	r.HandleFunc("/lists/{id}/forward", makeHandler(s, forward)).Methods(http.MethodGet)
	r.HandleFunc("/lists/{id}/backward", makeHandler(s, backward)).Methods(http.MethodGet)
	return r
}

type handler func(w http.ResponseWriter, r *http.Request, s *store.ListStore)

func makeHandler(s *store.ListStore, h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(w, r, s)
	}
}

// listID parses the {id} path variable. On failure it writes a
// 400 and returns false.
func listID(w http.ResponseWriter, r *http.Request) (ulid.ULID, bool) {
	id, err := ulid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return ulid.ULID{}, false
	}
	return id, true
}

// writeError maps store and list errors to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrListDoesntExist),
		errors.Is(err, dll.ErrKeyNotFound),
		errors.Is(err, dll.ErrEmptyList):
		code = http.StatusNotFound
	case errors.Is(err, dll.ErrDuplicateKey):
		code = http.StatusConflict
	}
	http.Error(w, err.Error(), code)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	byteData, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(byteData)
}
