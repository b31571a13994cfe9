package secondary

import "errors"

// ErrSnapshotNotFound reports a snapshot key that has never been written.
// Callers fall back to built-in seed data.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// ErrAssetNotFound reports a scan against an unknown asset.
var ErrAssetNotFound = errors.New("asset not found")
