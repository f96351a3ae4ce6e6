// Where: server/server.go
// What: The admin HTTP surface the deployment tool talks to.
// Why: Discovery works by starting the functions process and fetching
//      the manifest from it, then asking it to exit.
package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/cloudlet-dev/functions/manifest"
	"github.com/cloudlet-dev/functions/registry"
)

const (
	manifestPath = "/__/functions.yaml"
	quitPath     = "/__/quitquitquit"
)

// Server exposes the registry as the admin discovery endpoints.
type Server struct {
	reg      *registry.Registry
	globals  manifest.GlobalOptions
	httpSrv  *http.Server
	quit     chan struct{}
	quitOnce sync.Once
}

// New builds a server over the given registry; nil means the default
// registry.
func New(reg *registry.Registry, globals manifest.GlobalOptions) *Server {
	if reg == nil {
		reg = registry.Default
	}
	return &Server{
		reg:     reg,
		globals: globals,
		quit:    make(chan struct{}),
	}
}

// Handler returns the admin mux. Exposed separately so tests can drive
// it without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(manifestPath, s.handleManifest)
	mux.HandleFunc(quitPath, s.handleQuit)
	return mux
}

// Quit is closed once a shutdown has been requested over HTTP.
func (s *Server) Quit() <-chan struct{} {
	return s.quit
}

// ListenAndServe serves the admin endpoints until Shutdown or a quit
// request.
func (s *Server) ListenAndServe(addr string) error {
	s.httpSrv = &http.Server{Addr: addr, Handler: s.Handler()}
	go func() {
		<-s.quit
		s.httpSrv.Shutdown(context.Background())
	}()
	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the listener gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	stack, err := manifest.Assemble(s.reg.Snapshot(), s.reg.Params(), s.globals)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	out, err := stack.EncodeYAML()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/yaml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

func (s *Server) handleQuit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
	s.quitOnce.Do(func() { close(s.quit) })
}
