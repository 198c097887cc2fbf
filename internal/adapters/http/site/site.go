// Package site serves the embedded sign-up front end.
package site

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Error constants.
var (
	ErrServe = errors.New("site serve failed")
)

// IndexPath is where the front end's entry page lives.
const IndexPath = "/static/index.html"

// Register attaches the front-end routes to r:
//
//	GET /                   -> 307 to /static/index.html
//	GET /static/index.html  -> entry page
//	GET /static/*           -> embedded assets
func Register(_ context.Context, r chi.Router) {
	if r == nil {
		panic("router is nil")
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, IndexPath, http.StatusTemporaryRedirect)
	})

	// http.FileServer redirects */index.html to the directory, so the entry
	// page is written directly.
	r.Get(IndexPath, serveIndex)
	r.Get("/static/", serveIndex)
	r.Get("/static/*", http.StripPrefix("/static", http.FileServer(FS())).ServeHTTP)
}

func serveIndex(w http.ResponseWriter, _ *http.Request) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, ErrServe.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(page)
}
