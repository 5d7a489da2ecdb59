package web_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/goal-tracker/internal/web"
)

func TestHome(t *testing.T) {
	rec := httptest.NewRecorder()
	web.NewHandler().Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	html := rec.Body.String()
	assert.True(t, strings.HasPrefix(strings.ToLower(html), "<!doctype html>"))
	assert.Contains(t, html, `<script src="https://unpkg.com/htmx.org@1.9.10"></script>`)
	assert.Contains(t, html, "uno.global.js")
	assert.Contains(t, html, "modern-normalize.css")
	assert.Contains(t, html, `<div id="menu">`)
	assert.Contains(t, html, `<div id="content">`)
	assert.Contains(t, html, "<h1>Goal Tracker Demo</h1>")
	assert.Contains(t, html, `hx-post="/view/goal"`)
	assert.Contains(t, html, `<output hx-get="/view/goal-list" hx-swap="innerHTML" hx-trigger="load"></output>`)
}

func TestNavbar(t *testing.T) {
	var b strings.Builder
	require.NoError(t, web.Navbar(web.Links).Render(&b))
	html := b.String()

	assert.Contains(t, html, `<nav class="bg-gray-800 text-white p-2">`)
	assert.Equal(t, len(web.Links), strings.Count(html, "<li>"))
	for _, l := range web.Links {
		assert.Contains(t, html, `<a href="`+l.URL+`">`+l.Title+`</a>`)
	}
}
