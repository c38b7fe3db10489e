package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/veritaslex/arbilens/internal/application/argument"
	"github.com/veritaslex/arbilens/internal/application/comparison"
	"github.com/veritaslex/arbilens/internal/application/search"
	"github.com/veritaslex/arbilens/internal/domain/concept"
	"github.com/veritaslex/arbilens/internal/domain/document"
	arbihttp "github.com/veritaslex/arbilens/internal/interfaces/http"
	"github.com/veritaslex/arbilens/internal/interfaces/http/handlers"
)

// newTestAPI wires a full route tree over fresh in-memory state.
func newTestAPI(t *testing.T) (*gin.Engine, *document.Store, *concept.Registry) {
	t.Helper()

	registry := concept.NewRegistry()
	store := document.NewStore()
	segmenter := document.NewSegmenter(registry, nil, 0)

	router := arbihttp.NewRouter(arbihttp.RouterConfig{
		DocumentHandler: handlers.NewDocumentHandler(store, segmenter, nil),
		ConceptHandler:  handlers.NewConceptHandler(registry, nil),
		SearchHandler:   handlers.NewSearchHandler(search.NewEngine(registry, segmenter, nil, nil), store, 0),
		CompareHandler:  handlers.NewCompareHandler(comparison.NewComparator(store, segmenter, 0, nil, nil)),
		ArgumentHandler: handlers.NewArgumentHandler(argument.NewMiner(registry, nil, nil), store),
		HealthHandler:   handlers.NewHealthHandler("test"),
		Mode:            gin.TestMode,
	})
	return router, store, registry
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func mustStore(t *testing.T, store *document.Store, id, text, role string) {
	t.Helper()
	_, err := store.Put(document.Document{ID: id, Text: text, Role: role})
	require.NoError(t, err)
}
