package ports

import "context"

// DiagnosticsSink stores debug artifacts such as failure screenshots.
type DiagnosticsSink interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}
