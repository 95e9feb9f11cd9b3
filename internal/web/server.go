// Package web serves the upload-driven front end: a single page that
// accepts a CSV file, shows summary metrics, and offers the rendered
// reports for download. It passes opaque rows and profiles across the core
// boundary and holds no statistics logic of its own.
package web

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/FarisHijazi/csv-profiler/internal/config"
	"github.com/FarisHijazi/csv-profiler/internal/logging"
	"github.com/FarisHijazi/csv-profiler/internal/profile"
	"github.com/FarisHijazi/csv-profiler/internal/reader"
	"github.com/FarisHijazi/csv-profiler/internal/render"
)

// Server is the upload front end.
type Server struct {
	cfg    *config.Global
	store  *reportStore
	router chi.Router
}

func NewServer(cfg *config.Global) *Server {
	s := &Server{
		cfg:   cfg,
		store: newReportStore(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/profile", s.handleProfile)
	r.Get("/reports/{id}/{format}", s.handleDownload)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the server on the configured address.
func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.cfg.WebAddr, s.router)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, nil); err != nil {
		logging.FromContext(r.Context()).Error("render index", "error", err)
	}
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("upload rejected", "error", err)
		http.Error(w, "upload failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error("read upload", "error", err)
		http.Error(w, "read upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	head, rows, err := reader.ParseString(string(data))
	if err != nil {
		log.Warn("parse csv", "file", header.Filename, "error", err)
		http.Error(w, "parse csv: "+err.Error(), http.StatusBadRequest)
		return
	}

	p, err := profile.Build(rows, profile.Options{
		TopK:   s.cfg.TopK,
		Header: head,
		Strict: s.cfg.Strict,
	})
	if err != nil {
		http.Error(w, "profile: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	jsonOut, err := render.JSON(p)
	if err != nil {
		log.Error("render json", "error", err)
		http.Error(w, "render: "+err.Error(), http.StatusInternalServerError)
		return
	}
	mdOut := render.Markdown(p)

	id := s.store.put(&report{
		Name:     stem(header.Filename),
		JSON:     jsonOut,
		Markdown: mdOut,
	})

	log.Info("profiled upload",
		"file", header.Filename,
		"rows", p.NRows,
		"cols", p.NCols,
		"report_id", id,
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := resultTmpl.Execute(w, newResultView(id, header.Filename, p, jsonOut, mdOut)); err != nil {
		log.Error("render result", "error", err)
	}
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	format := chi.URLParam(r, "format")

	rep, ok := s.store.get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rep.Name+"_profile.json"))
		_, _ = io.WriteString(w, rep.JSON)
	case "markdown", "md":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rep.Name+"_profile.md"))
		_, _ = io.WriteString(w, rep.Markdown)
	default:
		http.Error(w, "unknown format: "+format, http.StatusBadRequest)
	}
}

// stem strips the extension from an uploaded file name.
func stem(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	if name == "" {
		return "upload"
	}
	return name
}
