package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareReturnsRecords(t *testing.T) {
	router, store, _ := newTestAPI(t)
	mustStore(t, store, "v1", "The tribunal finds Article 5 applies.", "")
	mustStore(t, store, "v2", "The tribunal finds Article 6 applies.", "")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/compare", map[string]any{
		"doc1_id": "v1", "doc2_id": "v2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.EqualValues(t, 1, body["count"])
	first := body["records"].([]any)[0].(map[string]any)
	assert.Equal(t, true, first["is_substantial"])
}

func TestCompareUnknownDocumentYieldsEmptyResponse(t *testing.T) {
	router, store, _ := newTestAPI(t)
	mustStore(t, store, "v1", "A paragraph that is long enough to keep around.", "")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/compare", map[string]any{
		"doc1_id": "v1", "doc2_id": "ghost",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, decodeBody(t, rec)["count"])
}

func TestCompareCitationViewFiltersRecords(t *testing.T) {
	router, store, _ := newTestAPI(t)
	// First paragraph pair differs only stylistically; second changes an
	// article id.
	mustStore(t, store, "v1",
		"costs are shared equally here.\n\nhaving considered the parties' submissions at length, the tribunal holds that article 5 governs every aspect of the present dispute.", "")
	mustStore(t, store, "v2",
		"costs are shared equally there.\n\nhaving considered the parties' submissions at length, the tribunal holds that article 6 governs every aspect of the present dispute.", "")

	all := doJSON(t, router, http.MethodPost, "/api/v1/compare", map[string]any{
		"doc1_id": "v1", "doc2_id": "v2", "view": "all",
	})
	require.Equal(t, http.StatusOK, all.Code)
	allCount := decodeBody(t, all)["count"].(float64)

	citation := doJSON(t, router, http.MethodPost, "/api/v1/compare", map[string]any{
		"doc1_id": "v1", "doc2_id": "v2", "view": "citation",
	})
	require.Equal(t, http.StatusOK, citation.Code)
	body := decodeBody(t, citation)
	require.EqualValues(t, 1, body["count"])
	assert.Greater(t, allCount, body["count"].(float64))

	first := body["records"].([]any)[0].(map[string]any)
	flags := first["flags"].(map[string]any)
	assert.Equal(t, true, flags["citation_diff"])
}

func TestCompareInvalidViewRejected(t *testing.T) {
	router, _, _ := newTestAPI(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/compare", map[string]any{
		"doc1_id": "a", "doc2_id": "b", "view": "everything",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
