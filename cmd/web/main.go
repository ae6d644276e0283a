package main

import (
	"context"
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"learnfield.org/course-web/internal/catalog"
	"learnfield.org/course-web/internal/format"
	"learnfield.org/course-web/internal/handlers"
	"learnfield.org/course-web/internal/i18n"
	mw "learnfield.org/course-web/internal/middleware"
	"learnfield.org/course-web/internal/observability"
	"learnfield.org/course-web/internal/querycache"
)

// app bundles the shared dependencies of the HTTP handlers.
type app struct {
	cfg       Config
	logger    *zap.Logger
	bundle    *i18n.Bundle
	client    *catalog.Client
	store     *querycache.Store
	analytics handlers.Analytics

	dev       bool
	tmplCache *template.Template
}

func main() {
	logger, err := observability.NewLogger()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	flag.StringVar(&cfg.TemplatesDir, "templates", cfg.TemplatesDir, "templates directory")
	flag.StringVar(&cfg.PublicDir, "public", cfg.PublicDir, "public assets directory")
	flag.StringVar(&cfg.LocalesDir, "locales", cfg.LocalesDir, "locales directory")
	flag.Parse()

	bundle, err := i18n.Load(cfg.LocalesDir, cfg.DefaultLang, []string{"en", "bn"})
	if err != nil {
		logger.Fatal("load locales", zap.Error(err))
	}

	client := catalog.NewClient(cfg.APIBaseURL, logger)
	store := querycache.New(client, logger)

	a := &app{
		cfg:       cfg,
		logger:    logger,
		bundle:    bundle,
		client:    client,
		store:     store,
		analytics: handlers.LoadAnalyticsFromEnv(),
		dev:       cfg.Dev,
	}
	if !a.dev {
		tc, err := a.parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		a.tmplCache = tc
	}

	if cfg.Warmup {
		// seed the cache with the default course so the first page view is
		// served from the freshness window
		go a.warmup()
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           a.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("web listening", zap.String("addr", cfg.Addr), zap.Bool("dev", a.dev))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

// routes assembles the router and middleware chain.
func (a *app) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.Locale(a.bundle))
	r.Use(mw.Logger(a.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(a.cfg.PublicDir, "assets"))))
	r.Handle("/assets/*", assets)

	r.Get("/", a.CourseHandler)
	r.Get("/courses/{slug}", a.CourseHandler)
	r.Get("/api/courses/{slug}", a.CoursePlanAPIHandler)
	return r
}

// warmup fetches the default course once per supported language and seeds the
// cache as fresh initial data.
func (a *app) warmup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, lang := range a.bundle.Supported() {
		course, err := a.client.GetCourse(ctx, a.cfg.DefaultSlug, lang)
		if err != nil {
			a.logger.Warn("warmup fetch failed", zap.String("lang", lang), zap.Error(err))
			continue
		}
		a.store.Seed(a.cfg.DefaultSlug, lang, course, true)
	}
}

func (a *app) parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now":      time.Now,
		"safeHTML": handlers.SanitizeHTML,
		"digits":   format.Digits,
	}
	// Recursively discover and parse all .tmpl files. ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(a.cfg.TemplatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", a.cfg.TemplatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// render executes the base layout. In dev mode, templates are reparsed on
// each request.
func (a *app) render(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t := a.tmplCache
	if a.dev {
		tc, err := a.parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return
		}
		t = tc
	}
	if t == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		a.logger.Error("template exec", zap.Error(err))
	}
}
