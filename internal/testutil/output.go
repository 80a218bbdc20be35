package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// CaptureOutput runs fn with os.Stdout redirected and returns what it printed
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	defer func() {
		os.Stdout = oldStdout
	}()
	fn()

	_ = w.Close()
	return <-outC
}
