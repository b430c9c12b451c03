// Package testutil holds fixtures shared by the package tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// Glossary is a small catalog spanning three categories.
const Glossary = `[
	{"name": "Sustantivo", "type": "Categorías léxicas", "description": "Palabra que designa **seres** u objetos."},
	{"name": "Sujeto", "type": "Funciones sintácticas", "description": "Función que concuerda con el verbo."},
	{"name": "Verbo", "type": "Categorías léxicas", "description": "Núcleo del *predicado*."},
	{"name": "Predicado", "type": "Funciones sintácticas", "description": "Lo que se dice del sujeto."},
	{"name": "Oración", "type": "Sintaxis", "description": "Unidad mínima con sentido completo."}
]`

// ServeCatalog starts an HTTP server answering every request with body and
// status. It is closed when the test ends.
func ServeCatalog(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// WriteCatalog writes body to a data.json file in a temporary directory and
// returns its path.
func WriteCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}
