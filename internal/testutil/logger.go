package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns a text slog logger writing into a buffer so tests
// can assert on emitted lines.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}
