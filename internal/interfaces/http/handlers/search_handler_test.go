package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFindsConceptVariation(t *testing.T) {
	router, store, _ := newTestAPI(t)
	mustStore(t, store, "statement",
		"The event was an act of god beyond anyone's control, the Operator submits.", "")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/search", map[string]any{
		"query": "force majeure",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.EqualValues(t, 1, body["count"])
	results := body["results"].([]any)
	first := results[0].(map[string]any)
	assert.Equal(t, "statement", first["doc_id"])
}

func TestSearchEmptyStoreYieldsEmptyResults(t *testing.T) {
	router, _, _ := newTestAPI(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/search", map[string]any{"query": "anything"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, decodeBody(t, rec)["count"])
}

func TestSearchThresholdOutOfRangeRejected(t *testing.T) {
	router, _, _ := newTestAPI(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/search", map[string]any{
		"query": "anything", "threshold": 0.95,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ANA_001", decodeBody(t, rec)["code"])
}

func TestSearchDocIDSubsetRestriction(t *testing.T) {
	router, store, _ := newTestAPI(t)
	text := "The contract imposes liability for any failure to perform on time."
	mustStore(t, store, "a", text, "")
	mustStore(t, store, "b", text, "")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/search", map[string]any{
		"query":   "liability",
		"doc_ids": []string{"b"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.EqualValues(t, 1, body["count"])
	first := body["results"].([]any)[0].(map[string]any)
	assert.Equal(t, "b", first["doc_id"])
}

func TestSearchMissingQueryRejected(t *testing.T) {
	router, _, _ := newTestAPI(t)
	rec := doJSON(t, router, http.MethodPost, "/api/v1/search", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
