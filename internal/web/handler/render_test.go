package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	"github.com/mcoot/freeplay/internal/testutil"
	"github.com/mcoot/freeplay/internal/view"
	"github.com/mcoot/freeplay/internal/web/templates/layout"
)

func TestRenderWritesPage(t *testing.T) {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p class="body">hello</p>`)
		return err
	})

	rec := httptest.NewRecorder()
	render(rec, httptest.NewRequest(http.MethodGet, "/", nil), testutil.NopLogger(), layout.PageData{Active: view.PageHome}, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `<main class="page" data-page="home"><p class="body">hello</p></main>`)
}

func TestRenderFailureIsServerError(t *testing.T) {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, `<p class="partial">half a page</p>`)
		return errors.New("template exploded")
	})

	var logs bytes.Buffer
	rec := httptest.NewRecorder()
	render(rec, httptest.NewRequest(http.MethodGet, "/library", nil), testutil.WriterLogger(&logs), layout.PageData{Active: view.PageLibrary}, body)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.NotContains(t, rec.Body.String(), "half a page")
	assert.NotContains(t, rec.Body.String(), "<html")
	assert.Contains(t, logs.String(), "render page")
	assert.Contains(t, logs.String(), "template exploded")
}

func TestNotFoundPage(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<h1>Страница не найдена</h1>")
}
