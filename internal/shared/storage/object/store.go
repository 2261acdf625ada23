package object

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"resume-tailor/internal/shared/util"
)

// ErrNotFound is returned by Open when no object exists at the key.
var ErrNotFound = errors.New("object not found")

// ObjectStore holds rendered artifacts addressed by storage key.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// PreviewKey is the storage key for an export preview of an editing session.
func PreviewKey(userID, sessionID string, seq uint64) string {
	return path.Join(util.HashUserKey(userID), "previews", sessionID, fmt.Sprintf("%d.pdf", seq))
}
