package watcher

import "context"

// Watcher monitors a drop directory for new audio recordings.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly dropped audio file.
type EventHandler func(ctx context.Context, audioPath string) error
