package mobile

import (
	"log"
	"net/http"
	"path/filepath"

	"chessgame/internal/config"
	"chessgame/internal/server/game"
	httpserver "chessgame/internal/server/http"
)

// StartServer starts the local HTTP server for the app's web view.
// webDir: physical path to the extracted web assets
// dataDir: writable app directory for saved preferences ("" to not save)
// port: port to listen on, e.g. "2888"
func StartServer(webDir, dataDir, port string) {
	games := game.NewManager(config.Default().GameSettings())
	prefsPath := ""
	if dataDir != "" {
		prefsPath = filepath.Join(dataDir, "prefs.json")
	}
	mux := httpserver.NewMux(games, webDir, webDir, prefsPath)

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, mux); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
