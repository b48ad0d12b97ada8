package httpserver

import (
	"net/http"

	"chessgame/internal/server/game"
)

// NewMux wires the JSON API and the static asset routes onto one mux.
// prefsPath is where the web client's preferences are kept; empty keeps
// them in memory of the page only.
func NewMux(m *game.Manager, desktopDir, mobileDir, prefsPath string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", NewHandler(m, prefsPath))
	RegisterStaticRoutes(mux, desktopDir, mobileDir)
	return mux
}
