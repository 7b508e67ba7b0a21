package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func explorationRequest(method, target string, params map[string]string) (*http.Request, *httptest.ResponseRecorder) {
	req := withURLParams(httptest.NewRequest(method, target, nil), params)
	return req, httptest.NewRecorder()
}

func TestHandleGetExplorationPoints(t *testing.T) {
	e := newEnv(t)

	req, rec := explorationRequest(http.MethodGet, "/api/v1/exploration/planet-1/points",
		map[string]string{"planetID": "planet-1"})
	HandleGetExplorationPoints(e.exploration).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ExplorationPointsResponse
	require.NoError(t, decodeBody(rec, &resp))
	assert.Equal(t, "planet-1", resp.PlanetID)
	assert.NotEmpty(t, resp.Points)

	// Generation is deterministic per planet.
	req2, rec2 := explorationRequest(http.MethodGet, "/api/v1/exploration/planet-1/points",
		map[string]string{"planetID": "planet-1"})
	HandleGetExplorationPoints(e.exploration).ServeHTTP(rec2, req2)

	var resp2 ExplorationPointsResponse
	require.NoError(t, decodeBody(rec2, &resp2))
	assert.Equal(t, resp.Points, resp2.Points)
}

func TestHandleToggleExplorationPoint(t *testing.T) {
	e := newEnv(t)

	req, rec := explorationRequest(http.MethodGet, "/api/v1/exploration/planet-1/points",
		map[string]string{"planetID": "planet-1"})
	HandleGetExplorationPoints(e.exploration).ServeHTTP(rec, req)

	var resp ExplorationPointsResponse
	require.NoError(t, decodeBody(rec, &resp))
	require.NotEmpty(t, resp.Points)
	point := resp.Points[0]

	req, rec = explorationRequest(http.MethodPost, "/api/v1/exploration/planet-1/points/"+point.ID+"/toggle",
		map[string]string{"planetID": "planet-1", "pointID": point.ID})
	HandleToggleExplorationPoint(e.exploration).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "active")

	t.Run("unknown point maps to 404", func(t *testing.T) {
		req, rec := explorationRequest(http.MethodPost, "/api/v1/exploration/planet-1/points/ghost/toggle",
			map[string]string{"planetID": "planet-1", "pointID": "ghost"})
		HandleToggleExplorationPoint(e.exploration).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
