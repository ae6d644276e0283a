package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"learnfield.org/course-web/internal/handlers"
	mw "learnfield.org/course-web/internal/middleware"
	"learnfield.org/course-web/internal/plan"
)

// CourseHandler renders the course detail page. The root path serves the
// configured default course.
func (a *app) CourseHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		slug = a.cfg.DefaultSlug
	}
	lang := mw.Lang(r)
	t := func(key string) string { return a.bundle.T(lang, key) }

	course, err := a.store.Get(r.Context(), slug, lang)
	if err != nil {
		vm := handlers.BuildCourseError(lang, r.URL.Path, err.Error(), t)
		vm.Analytics = a.analytics
		a.render(w, http.StatusBadGateway, vm)
		return
	}

	vm := handlers.BuildCoursePage(course, lang, r.URL.Path, t)
	vm.Analytics = a.analytics
	a.render(w, http.StatusOK, vm)
}

// CoursePlanAPIHandler serves the assembled render plan as JSON.
func (a *app) CoursePlanAPIHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	lang := mw.Lang(r)

	course, err := a.store.Get(r.Context(), slug, lang)
	if err != nil {
		mw.JSONError(w, r, http.StatusBadGateway, err.Error())
		return
	}

	p := plan.Build(course.Sections, lang)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(handlers.BuildPlanJSON(course.Slug, lang, p))
}
