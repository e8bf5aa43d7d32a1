package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-talentiq-client/internal/models"
)

func TestUploadSendsMultipartFileField(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/resumes/upload", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "resume.pdf", header.Filename)
		content, _ := io.ReadAll(file)
		assert.Equal(t, "%PDF resume bytes", string(content))

		json.NewEncoder(w).Encode(models.Resume{ID: 3, Filename: "resume.pdf"})
	})

	resumes := NewResumes(newTestGateway(t, mux))
	uploaded, err := resumes.Upload(context.Background(), "resume.pdf", strings.NewReader("%PDF resume bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), uploaded.ID)
}

func TestTextUnwrapsTextField(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/resumes/3/text", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"text":"five years of Go"}`))
	})

	resumes := NewResumes(newTestGateway(t, mux))
	text, err := resumes.Text(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "five years of Go", text)
}

func TestUploadRequiresFilename(t *testing.T) {
	resumes := NewResumes(newTestGateway(t, http.NewServeMux()))
	_, err := resumes.Upload(context.Background(), "", strings.NewReader("x"))
	require.Error(t, err)
}
