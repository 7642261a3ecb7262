package web

import (
	"log"
	"net/http"

	"github.com/ehrlich-b/cube/internal/prune"
	"github.com/gorilla/mux"
)

type Server struct {
	router   *mux.Router
	registry *prune.Registry
}

func NewServer() *Server {
	s := &Server{
		router:   mux.NewRouter(),
		registry: prune.NewRegistry(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/solve/stream", s.handleSolveStream).Methods("GET")
}

func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
