package api

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-talentiq-client/internal/models"
)

func TestRenameSendsNewTitleAsQueryParam(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cv/4/rename", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "Backend CV", r.URL.Query().Get("newTitle"))
		json.NewEncoder(w).Encode(models.CV{ID: 4, Title: "Backend CV"})
	})

	cvs := NewCVs(newTestGateway(t, mux))
	renamed, err := cvs.Rename(context.Background(), 4, "Backend CV")
	require.NoError(t, err)
	assert.Equal(t, "Backend CV", renamed.Title)
}

func TestRenameRequiresTitle(t *testing.T) {
	cvs := NewCVs(newTestGateway(t, http.NewServeMux()))
	_, err := cvs.Rename(context.Background(), 4, "")
	require.Error(t, err)
}

func TestImportFromResumeSendsTemplateID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cv/import-from-resume/12", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "modern", r.URL.Query().Get("templateId"))
		json.NewEncoder(w).Encode(models.CV{ID: 20, Title: "Imported"})
	})

	cvs := NewCVs(newTestGateway(t, mux))
	cv, err := cvs.ImportFromResume(context.Background(), 12, "modern")
	require.NoError(t, err)
	assert.Equal(t, int64(20), cv.ID)
}

func TestDownloadPDFWritesDestination(t *testing.T) {
	pdf := []byte("%PDF-1.7 fake body")
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cv/4/download-pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	})

	cvs := NewCVs(newTestGateway(t, mux))
	dir := t.TempDir()
	dest := filepath.Join(dir, "cv.pdf")
	require.NoError(t, cvs.DownloadPDF(context.Background(), 4, dest))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, pdf, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp file left behind")
}

func TestDownloadPDFTruncatedStreamLeavesNothing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cv/4/download-pdf", func(w http.ResponseWriter, r *http.Request) {
		// Promise more bytes than get sent so the client's copy fails.
		w.Header().Set("Content-Length", "1024")
		w.Write([]byte("%PDF"))
	})

	cvs := NewCVs(newTestGateway(t, mux))
	dir := t.TempDir()
	dest := filepath.Join(dir, "cv.pdf")
	require.Error(t, cvs.DownloadPDF(context.Background(), 4, dest))

	_, err := os.Stat(dest)
	assert.True(t, os.IsNotExist(err), "partial download must not land at the destination")

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "temp file removed on failure")
}

func TestDownloadPDFErrorStatusSurfacesAPIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cv/4/download-pdf", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"CV not found"}`))
	})

	cvs := NewCVs(newTestGateway(t, mux))
	dir := t.TempDir()
	err := cvs.DownloadPDF(context.Background(), 4, filepath.Join(dir, "cv.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CV not found")

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
