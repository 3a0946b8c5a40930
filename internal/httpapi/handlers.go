// Package httpapi exposes a config.Store over HTTP.
//
// The store contract itself is not safe for concurrent use, so the
// HTTP layer owns a RWMutex and takes it around every store call.
// Values set over HTTP live in memory only.
package httpapi

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"

	"confkit/internal/config"

	"github.com/gorilla/mux"
)

// Server serializes access to a config.Store for HTTP handlers.
type Server struct {
	mu    sync.RWMutex
	store config.Store
}

// NewServer creates a Server around store.
func NewServer(store config.Store) *Server {
	return &Server{store: store}
}

// Router returns the HTTP route table for the server.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/config", s.handleAll).Methods("GET")
	r.HandleFunc("/config/{key}", s.handleHas).Methods("HEAD")
	r.HandleFunc("/config/{key}", s.handleGet).Methods("GET")
	r.HandleFunc("/config/{key}", s.handleSet).Methods("PUT")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "OK")
	})
	return r
}

func (s *Server) handleAll(w http.ResponseWriter, req *http.Request) {
	s.mu.RLock()
	all := s.store.All()
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(all)
}

func (s *Server) handleGet(w http.ResponseWriter, req *http.Request) {
	key := mux.Vars(req)["key"]

	s.mu.RLock()
	value, ok := s.store.Get(key)
	s.mu.RUnlock()

	log.Printf("[API] GET key=%s found=%v", key, ok)

	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	io.WriteString(w, value)
}

func (s *Server) handleHas(w http.ResponseWriter, req *http.Request) {
	key := mux.Vars(req)["key"]

	s.mu.RLock()
	ok := s.store.Has(key)
	s.mu.RUnlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSet(w http.ResponseWriter, req *http.Request) {
	key := mux.Vars(req)["key"]
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "reading body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.store.Set(key, string(body))
	s.mu.Unlock()

	log.Printf("[API] PUT key=%s", key)

	w.WriteHeader(http.StatusNoContent)
}
