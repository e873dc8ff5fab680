// Package testutil holds shared helpers for package tests.
package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/dse/emacs-custom-faces-file/internal/logging"
)

// NewTestContext returns a context with a logger writing to an
// in-memory buffer, plus the buffer for assertions on log output.
func NewTestContext(t *testing.T) (context.Context, *strings.Builder) {
	t.Helper()

	var buf strings.Builder
	ctx, err := logging.New(context.Background(), nil, logging.Config{
		Writer: &buf,
		Level:  logging.DebugLevel,
	})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return ctx, &buf
}
