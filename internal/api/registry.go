package api

import (
	"fmt"
	"net/http"
	"strings"
)

// maxUploadBytes bounds multipart request bodies.
const maxUploadBytes = 10 << 20 // 10MB

// Registry is the closed set of named operations. Modules register their
// operations at startup; dispatch never sees a name that was not declared.
type Registry struct {
	ops map[string]http.HandlerFunc
}

// NewRegistry creates an empty operation registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]http.HandlerFunc)}
}

// Register adds a named operation. Registering the same name twice is a
// programming error and panics during startup wiring.
func (reg *Registry) Register(name string, h http.HandlerFunc) {
	if _, exists := reg.ops[name]; exists {
		panic(fmt.Sprintf("api: operation %q registered twice", name))
	}
	reg.ops[name] = h
}

// ServeHTTP parses the request, resolves the operation parameter against the
// registry, and dispatches. Browser clients call this endpoint directly, so
// CORS headers and the OPTIONS preflight are handled here.
func (reg *Registry) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		// MaxBytesReader enforces the limit on the whole body; the same
		// value passed to ParseMultipartForm only sets the in-memory
		// threshold before parts spill to disk.
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			Error(w, http.StatusBadRequest, "File too large")
			return
		}
	} else if err := r.ParseForm(); err != nil {
		Error(w, http.StatusBadRequest, "Malformed request")
		return
	}

	name := r.FormValue("operation")
	h, ok := reg.ops[name]
	if !ok {
		Error(w, http.StatusBadRequest, "Invalid action.")
		return
	}

	instrument(name, h).ServeHTTP(w, r)
}
