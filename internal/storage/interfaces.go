package storage

import "github.com/KaramelBytes/costview-cli/internal/dataset"

// SnapshotWriter persists a filtered dataset snapshot to some backend.
type SnapshotWriter interface {
	Write(d *dataset.Dataset) error
	Close() error
}
