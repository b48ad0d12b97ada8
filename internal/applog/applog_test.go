package applog

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitLogWritesToFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetPrefix("")

	dest := filepath.Join(t.TempDir(), "nested", "client.log")
	f, err := InitLog(dest, "CLIENT: ")
	if err != nil {
		t.Fatalf("InitLog: %v", err)
	}
	log.Println("hello")
	f.Close()

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "CLIENT: ") || !strings.Contains(string(data), "hello") {
		t.Fatalf("log contents: %q", data)
	}
}
