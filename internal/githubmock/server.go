// Package githubmock provides an httptest server emulating the GitHub git references API.
package githubmock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-github/v62/github"
)

// Error messages returned by the mock server, as GitHub words them.
const (
	MessageNotFound       = "Not Found"
	MessageRefExists      = "Reference already exists"
	MessageBadCredentials = "Bad credentials"
	MessageInvalidRef     = "Reference name must contain at least three slash-separated components."
	MessageInvalidSHA     = "Invalid request.\n\n\"sha\" wasn't supplied."
)

const documentationURL = "https://docs.github.com/rest/git/refs"

// Request is a request received by the mock server.
type Request struct {
	Method string
	Path   string
	Body   string
}

// ErrorResponse forces a response for an endpoint, keyed by "METHOD path".
type ErrorResponse struct {
	Status  int
	Message string
	Header  map[string]string
}

// ServerConfig configures the behavior of a mock GitHub server.
type ServerConfig struct {
	// Owner and Repo of the only repository the server knows.
	Owner string
	Repo  string
	// Token, when set, is the only bearer token accepted.
	Token string
	// Refs maps fully-qualified reference names (refs/heads/main) to commit SHAs.
	Refs map[string]string
	// ErrorResponses maps "METHOD path" to forced error responses.
	ErrorResponses map[string]ErrorResponse
}

// NewServerConfig creates a new mock server config with defaults.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Owner:          "owner",
		Repo:           "repo",
		Refs:           make(map[string]string),
		ErrorResponses: make(map[string]ErrorResponse),
	}
}

// Server is a running mock GitHub server.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	config   *ServerConfig
	requests []Request
}

// NewServer starts a mock GitHub server closed at the end of the test.
func NewServer(t *testing.T, config *ServerConfig) *Server {
	t.Helper()

	if config == nil {
		config = NewServerConfig()
	}
	if config.Refs == nil {
		config.Refs = make(map[string]string)
	}

	s := &Server{config: config}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/{owner}/{repo}/git/ref/{ref...}", s.handleGetRef)
	mux.HandleFunc("POST /repos/{owner}/{repo}/git/refs", s.handleCreateRef)

	s.Server = httptest.NewServer(s.record(s.authenticate(mux)))
	t.Cleanup(s.Close)

	return s
}

// APIURL returns the base URL to configure a client with.
func (s *Server) APIURL() string {
	return s.URL + "/"
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// SetErrorResponse forces the response of a route, given as "METHOD path".
func (s *Server) SetErrorResponse(route string, resp ErrorResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.config.ErrorResponses == nil {
		s.config.ErrorResponses = make(map[string]ErrorResponse)
	}
	s.config.ErrorResponses[route] = resp
}

// Ref returns the SHA a fully-qualified reference points to.
func (s *Server) Ref(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sha, ok := s.config.Refs[name]
	return sha, ok
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body string
		if r.Body != nil {
			data, _ := io.ReadAll(r.Body)
			body = string(data)
			r.Body = io.NopCloser(strings.NewReader(body))
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: r.Method, Path: r.URL.Path, Body: body})
		forced, isForced := s.config.ErrorResponses[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if isForced {
			for k, v := range forced.Header {
				w.Header().Set(k, v)
			}
			writeError(w, forced.Status, forced.Message)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.config.Token != "" && r.Header.Get("Authorization") != "Bearer "+s.config.Token {
			writeError(w, http.StatusUnauthorized, MessageBadCredentials)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) knowsRepository(r *http.Request) bool {
	return r.PathValue("owner") == s.config.Owner && r.PathValue("repo") == s.config.Repo
}

func (s *Server) handleGetRef(w http.ResponseWriter, r *http.Request) {
	if !s.knowsRepository(r) {
		writeError(w, http.StatusNotFound, MessageNotFound)
		return
	}

	name := "refs/" + r.PathValue("ref")
	sha, ok := s.Ref(name)
	if !ok {
		writeError(w, http.StatusNotFound, MessageNotFound)
		return
	}

	writeJSON(w, http.StatusOK, s.reference(name, sha))
}

func (s *Server) handleCreateRef(w http.ResponseWriter, r *http.Request) {
	if !s.knowsRepository(r) {
		writeError(w, http.StatusNotFound, MessageNotFound)
		return
	}

	var req struct {
		Ref string `json:"ref"`
		SHA string `json:"sha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Problems parsing JSON")
		return
	}

	if !strings.HasPrefix(req.Ref, "refs/") || strings.Count(req.Ref, "/") < 2 {
		writeError(w, http.StatusUnprocessableEntity, MessageInvalidRef)
		return
	}
	if req.SHA == "" {
		writeError(w, http.StatusUnprocessableEntity, MessageInvalidSHA)
		return
	}

	s.mu.Lock()
	_, exists := s.config.Refs[req.Ref]
	if !exists {
		s.config.Refs[req.Ref] = req.SHA
	}
	s.mu.Unlock()

	if exists {
		writeError(w, http.StatusUnprocessableEntity, MessageRefExists)
		return
	}

	writeJSON(w, http.StatusCreated, s.reference(req.Ref, req.SHA))
}

func (s *Server) reference(name, sha string) *github.Reference {
	return &github.Reference{
		Ref: github.String(name),
		URL: github.String(s.URL + "/repos/" + s.config.Owner + "/" + s.config.Repo + "/git/" + name),
		Object: &github.GitObject{
			Type: github.String("commit"),
			SHA:  github.String(sha),
		},
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"message":           message,
		"documentation_url": documentationURL,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
