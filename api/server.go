// Package api publishes campaign artifacts (ground-truth and detection
// report JSON files) over HTTP so the evaluator host can pull them. It
// is read-only and runs only as its own subcommand, never during a run.
package api

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/corneldamian/httpway"
	"github.com/gorilla/handlers"
	"github.com/julienschmidt/httprouter"
)

type Server struct {
	dir string

	server *httpway.Server

	addLog   func(string) bool
	addError func(error) bool
}

func NewServer(dir string, logFunc func(string) bool, errFunc func(error) bool) *Server {

	s := Server{
		dir:      dir,
		addLog:   logFunc,
		addError: errFunc,
	}

	return &s
}

func (s *Server) listHandler(response http.ResponseWriter, request *http.Request, ps httprouter.Params) {

	paths, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		s.addError(err)
		http.Error(response, err.Error(), 500)
		return
	}

	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	sort.Strings(names)

	response.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(response).Encode(names); err != nil {
		s.addError(err)
	}
}

func (s *Server) fileHandler(response http.ResponseWriter, request *http.Request, ps httprouter.Params) {

	name := ps.ByName("name")

	// Artifact names only; no path traversal.
	if name != filepath.Base(name) || !strings.HasSuffix(name, ".json") {
		http.Error(response, "not found", 404)
		return
	}

	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		http.Error(response, "not found", 404)
		return
	}

	http.ServeFile(response, request, path)
}

// Run starts the server and blocks until Stop is called.
func (s *Server) Run(addr string) error {

	r := httprouter.New()
	r.GET("/artifacts",
		func(response http.ResponseWriter, request *http.Request, ps httprouter.Params) {
			s.listHandler(response, request, ps)
		})

	r.GET("/artifacts/:name",
		func(response http.ResponseWriter, request *http.Request, ps httprouter.Params) {
			s.fileHandler(response, request, ps)
		})

	s.server = httpway.NewServer(nil)
	s.server.Handler = handlers.LoggingHandler(os.Stdout, r)
	s.server.Addr = addr

	s.addLog("serving artifacts from " + s.dir + " on " + addr)

	if err := s.server.Start(); err != nil {
		return err
	}

	return s.server.WaitStop(2 * time.Second)
}

func (s *Server) Stop() error {
	return s.server.Stop()
}
