// Package source provides read-only content tree origins: a local
// directory, an S3-compatible bucket, or the committed state of a git
// reference. All origins expose the same listing and read surface.
package source

import (
	"context"
	"errors"
)

// ErrNotExist reports that a path is absent from the origin tree, as
// opposed to the origin being unreachable. Callers may cache absence but
// should retry transport failures.
var ErrNotExist = errors.New("source: path does not exist")

// Origin is a read-only content tree. Paths use forward slashes and are
// relative to the tree root.
type Origin interface {
	// List returns every file path in the tree.
	List(ctx context.Context) ([]string, error)
	// Read returns the contents of one file, or ErrNotExist.
	Read(ctx context.Context, path string) ([]byte, error)
	// Ping verifies the origin is reachable.
	Ping(ctx context.Context) error
}
