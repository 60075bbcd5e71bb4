package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rocfold/domain/core"
	"rocfold/domain/evaluation"
	"rocfold/internal/errors"
)

type stubRenderer struct {
	data []byte
	err  error
	hits int
}

func (r *stubRenderer) Render(report *evaluation.Report) ([]byte, error) {
	r.hits++
	return r.data, r.err
}

func testReport() *evaluation.Report {
	return &evaluation.Report{
		RunID:    core.RunID("run-ui"),
		Dataset:  core.DatasetKey("iris"),
		Folds:    6,
		Samples:  100,
		Features: 804,
		Mean:     evaluation.MeanCurve{AUC: 0.79},
	}
}

func TestServer_Index(t *testing.T) {
	server := NewServer(testReport(), &stubRenderer{data: []byte("png")}, "ROC", gin.TestMode)

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "run-ui")
	assert.Contains(t, rec.Body.String(), "figure.png")
}

func TestServer_FigureRenderedOnce(t *testing.T) {
	renderer := &stubRenderer{data: []byte{0x89, 'P', 'N', 'G'}}
	server := NewServer(testReport(), renderer, "ROC", gin.TestMode)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/figure.png", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	}
	assert.Equal(t, 1, renderer.hits, "the figure should be rendered once and cached")
}

func TestServer_FigureRenderFailure(t *testing.T) {
	renderer := &stubRenderer{err: errors.RenderError("no display", nil)}
	server := NewServer(testReport(), renderer, "ROC", gin.TestMode)

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/figure.png", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_ReportJSON(t *testing.T) {
	server := NewServer(testReport(), &stubRenderer{}, "ROC", gin.TestMode)

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/report", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var decoded evaluation.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, core.RunID("run-ui"), decoded.RunID)
	assert.Equal(t, 6, decoded.Folds)
}
