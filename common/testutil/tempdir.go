// Package testutil holds small helpers shared by the on-disk tests in
// pageio and skiptree.
package testutil

import (
	"os"
	"testing"
)

// TempDir creates a temporary directory for a disk-backed test and
// schedules its removal when the test completes.
func TempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "invidx-test-*")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return dir
}
