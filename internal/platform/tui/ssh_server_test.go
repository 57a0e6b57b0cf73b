package tui

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestListenFailureClosesStore(t *testing.T) {
	dir := t.TempDir()
	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:-1",
		HostKeyPath: filepath.Join(dir, "host_key"),
		DBPath:      filepath.Join(dir, "scores.db"),
		TickRate:    60,
		Logger:      log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	store := srv.store
	if store == nil {
		t.Fatal("expected an open score store")
	}

	if err := srv.ListenAndServe(context.Background()); err == nil {
		t.Fatal("ListenAndServe() on an invalid port should fail")
	}
	if srv.store != nil {
		t.Error("store still attached after listen failure")
	}
	if _, err := store.TopScores("bounce", 1); err == nil {
		t.Error("store still usable after listen failure, expected it closed")
	}
}
