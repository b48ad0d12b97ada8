package httpserver

import (
	"net/http"
	"strings"
)

const viewCookieName = "chess_view"

type view string

const (
	viewDesktop view = "web"
	viewMobile  view = "mobile"
)

// prefix is where the view's assets are mounted.
func (v view) prefix() string {
	if v == viewMobile {
		return "/web_mobile/"
	}
	return "/web/"
}

// RegisterStaticRoutes mounts the desktop and mobile asset trees and sends
// "/" to one of them, chosen by ?view=, the view cookie or the User-Agent.
func RegisterStaticRoutes(mux *http.ServeMux, desktopDir, mobileDir string) {
	if mux == nil {
		return
	}
	if desktopDir == "" {
		desktopDir = "."
	}
	if mobileDir == "" {
		mobileDir = desktopDir
	}

	for v, dir := range map[view]string{viewDesktop: desktopDir, viewMobile: mobileDir} {
		p := v.prefix()
		mux.Handle(p, http.StripPrefix(p, http.FileServer(http.Dir(dir))))
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Vary", "User-Agent, Cookie")
		http.Redirect(w, r, chooseView(w, r).prefix(), http.StatusFound)
	})
}

func chooseView(w http.ResponseWriter, r *http.Request) view {
	if v, ok := parseView(r.URL.Query().Get("view")); ok {
		http.SetCookie(w, &http.Cookie{
			Name:     viewCookieName,
			Value:    string(v),
			Path:     "/",
			MaxAge:   30 * 24 * 60 * 60,
			SameSite: http.SameSiteLaxMode,
		})
		return v
	}
	if c, err := r.Cookie(viewCookieName); err == nil {
		if v, ok := parseView(c.Value); ok {
			return v
		}
	}
	if isMobileUA(r.UserAgent()) {
		return viewMobile
	}
	return viewDesktop
}

func parseView(s string) (view, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "web", "desktop", "pc":
		return viewDesktop, true
	case "mobile", "m", "phone", "web_mobile":
		return viewMobile, true
	default:
		return "", false
	}
}

var mobileUANeedles = []string{"android", "iphone", "ipad", "ipod", "mobile", "windows phone"}

func isMobileUA(ua string) bool {
	ua = strings.ToLower(ua)
	for _, n := range mobileUANeedles {
		if strings.Contains(ua, n) {
			return true
		}
	}
	return false
}
