package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConceptCreateAndList(t *testing.T) {
	router, _, registry := newTestAPI(t)
	before := registry.Len()

	created := doJSON(t, router, http.MethodPost, "/api/v1/concepts", map[string]any{
		"name":       "estoppel",
		"variations": []string{"estopped", "preclusion"},
	})
	require.Equal(t, http.StatusCreated, created.Code)
	assert.Equal(t, before+1, registry.Len())

	listed := doJSON(t, router, http.MethodGet, "/api/v1/concepts", nil)
	require.Equal(t, http.StatusOK, listed.Code)
	assert.EqualValues(t, before+1, decodeBody(t, listed)["count"])
}

func TestConceptCreateDuplicateRejectedWithoutMutation(t *testing.T) {
	router, _, registry := newTestAPI(t)

	first := doJSON(t, router, http.MethodPost, "/api/v1/concepts", map[string]any{
		"name": "estoppel", "variations": []string{"estopped"},
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, router, http.MethodPost, "/api/v1/concepts", map[string]any{
		"name": "estoppel", "variations": []string{"preclusion"},
	})
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Equal(t, "REG_001", decodeBody(t, second)["code"])

	got, ok := registry.Get("estoppel")
	require.True(t, ok)
	assert.Equal(t, []string{"estopped"}, got.Variations)
}

func TestConceptUpdateReplacesVariations(t *testing.T) {
	router, _, registry := newTestAPI(t)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/concepts/damages", map[string]any{
		"variations": []string{"loss", "harm"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	got, ok := registry.Get("damages")
	require.True(t, ok)
	assert.Equal(t, []string{"loss", "harm"}, got.Variations)
}

func TestConceptUpdateUnknownNameNotFound(t *testing.T) {
	router, _, _ := newTestAPI(t)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/concepts/unknown", map[string]any{
		"variations": []string{"x"},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "REG_002", decodeBody(t, rec)["code"])
}

func TestConceptDelete(t *testing.T) {
	router, _, registry := newTestAPI(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/concepts/damages", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, ok := registry.Get("damages")
	assert.False(t, ok)
}
