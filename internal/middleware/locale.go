package middleware

import (
	"context"
	"net/http"
	"strings"

	"learnfield.org/course-web/internal/i18n"
)

const (
	langCookie = "lang"

	// one year; the preference must survive browser restarts
	langCookieMaxAge = 365 * 24 * 60 * 60
)

// Locale resolves the active language for each request and persists it in the
// `lang` cookie. Precedence: explicit ?lang= query override, then the cookie,
// then Accept-Language, then the bundle fallback. The resolved language is
// stored in the request context and surfaced via Content-Language.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if q := strings.ToLower(r.URL.Query().Get("lang")); q != "" && bundle.IsSupported(q) {
				lang = q
				http.SetCookie(w, &http.Cookie{Name: langCookie, Value: q, Path: "/", MaxAge: langCookieMaxAge})
			}
			if lang == "" {
				if c, err := r.Cookie(langCookie); err == nil && bundle.IsSupported(strings.ToLower(c.Value)) {
					lang = strings.ToLower(c.Value)
				}
			}
			if lang == "" {
				lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}

			ctx := WithLang(r.Context(), lang)
			ctx = context.WithValue(ctx, ctxKeyLangFB, bundle.Fallback())
			w.Header().Set("Content-Language", lang)
			w.Header().Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Lang returns the resolved language for the request, defaulting to English.
func Lang(r *http.Request) string {
	if lang, ok := LangFromContext(r.Context()); ok {
		return lang
	}
	if v, ok := r.Context().Value(ctxKeyLangFB).(string); ok && v != "" {
		return v
	}
	return "en"
}
