// Package applog points the standard logger at a file. Programs that own
// the terminal must not write logs to it.
package applog

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// InitLog appends log output to dest with prefix on every line. It returns
// the opened file so the caller can close it on exit.
func InitLog(dest, prefix string) (*os.File, error) {
	if dir := filepath.Dir(dest); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("applog: %w", err)
		}
	}
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("applog: opening %s: %w", dest, err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
	return f, nil
}
