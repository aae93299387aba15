// Package logging configures the logrus logger shared by the vms command
// and carries a per-invocation run ID on the context.
package logging

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type runIDKey struct{}

// Setup configures the standard logrus logger to write text to w at level.
func Setup(w io.Writer, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	logrus.SetOutput(w)
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return nil
}

// NewContext returns a copy of ctx carrying a fresh run ID.
func NewContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, runIDKey{}, uuid.NewString())
}

// RunID returns the run ID stored on ctx, or "" if there is none.
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// WithContext returns a logger that has the context's run ID set on it.
func WithContext(ctx context.Context) logrus.FieldLogger {
	if id := RunID(ctx); id != "" {
		return logrus.WithField("run_id", id)
	}
	return logrus.StandardLogger()
}
