package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/actionmap/bind"
)

const initialBindings = `{
  "bindings": [
    {"action": "jump", "chord": ["space"]}
  ]
}`

const updatedBindings = `{
  "bindings": [
    {"action": "jump", "chord": ["space"]},
    {"action": "crouch", "chord": ["ctrl"]}
  ]
}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func waitForTable(t *testing.T, ch <-chan *bind.Table[string]) *bind.Table[string] {
	t.Helper()
	select {
	case table := <-ch:
		if table == nil {
			t.Fatal("subscriber channel closed unexpectedly")
		}
		return table
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reloaded table")
		return nil
	}
}

func TestNewRequiresFiles(t *testing.T) {
	if _, err := New(nil); err != ErrNoFiles {
		t.Errorf("New(nil) error = %v, want ErrNoFiles", err)
	}
}

func TestWatcherReloadOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.json")
	writeFile(t, path, initialBindings)

	w, err := New([]string{path}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	id, tables := w.Subscribe()
	defer w.Unsubscribe(id)

	// Forced reload delivers the initial table.
	w.Reload()
	table := waitForTable(t, tables)
	if table.Len() != 1 {
		t.Errorf("initial table Len() = %d, want 1", table.Len())
	}

	// Editing the file triggers a reload.
	writeFile(t, path, updatedBindings)
	table = waitForTable(t, tables)
	if table.Len() != 2 {
		t.Errorf("reloaded table Len() = %d, want 2", table.Len())
	}
	if len(table.Bindings("crouch")) != 1 {
		t.Error("reloaded table should contain the new crouch binding")
	}
}

func TestWatcherBroadcastsToAllSubscribers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.json")
	writeFile(t, path, initialBindings)

	w, err := New([]string{path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	id1, ch1 := w.Subscribe()
	id2, ch2 := w.Subscribe()
	defer w.Unsubscribe(id1)
	defer w.Unsubscribe(id2)

	if id1 == id2 {
		t.Error("subscription IDs should be unique")
	}

	w.Reload()
	if waitForTable(t, ch1).Len() != 1 {
		t.Error("first subscriber should receive the table")
	}
	if waitForTable(t, ch2).Len() != 1 {
		t.Error("second subscriber should receive the table")
	}
}

func TestWatcherLatestTableWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.json")
	writeFile(t, path, initialBindings)

	w, err := New([]string{path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	id, tables := w.Subscribe()
	defer w.Unsubscribe(id)

	// Two reloads without a read in between: the undelivered first
	// table is replaced, not queued.
	w.Reload()
	writeFile(t, path, updatedBindings)
	w.Reload()

	table := waitForTable(t, tables)
	if table.Len() != 2 {
		t.Errorf("subscriber should see the latest table, Len() = %d, want 2", table.Len())
	}
}

func TestWatcherLoadErrorKeepsLastTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.json")
	writeFile(t, path, initialBindings)

	w, err := New([]string{path}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	id, tables := w.Subscribe()
	defer w.Unsubscribe(id)

	writeFile(t, path, "{ this is not json")
	select {
	case err := <-w.Errors():
		if err == nil {
			t.Error("expected a load error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for load error")
	}

	// No broken table is delivered.
	select {
	case table := <-tables:
		t.Errorf("no table should be broadcast on load failure, got %v", table)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherUnsubscribeAndClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.json")
	writeFile(t, path, initialBindings)

	w, err := New([]string{path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	id, ch := w.Subscribe()
	w.Unsubscribe(id)
	if _, ok := <-ch; ok {
		t.Error("unsubscribed channel should be closed")
	}
	// Unsubscribing twice is a no-op.
	w.Unsubscribe(id)

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	// Closing twice is a no-op.
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
