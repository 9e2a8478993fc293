package store

import (
	"context"
)

// Collection names one persisted blob. Each collection is read and written
// wholesale as JSON; there are no partial updates.
type Collection string

const (
	CollectionSyllabus  Collection = "syllabus"
	CollectionTests     Collection = "tests"
	CollectionClasses   Collection = "classes"
	CollectionDay       Collection = "todayTodos"
	CollectionLogs      Collection = "logs"
	CollectionSummaries Collection = "weeklySummaries"
)

// Collections returns every known collection name.
func Collections() []Collection {
	return []Collection{
		CollectionSyllabus,
		CollectionTests,
		CollectionClasses,
		CollectionDay,
		CollectionLogs,
		CollectionSummaries,
	}
}

// Store is the persistence collaborator: an opaque per-collection blob
// store. Get returns a not-found error (errors.ErrorTypeNotFound) for a
// collection that has never been written.
type Store interface {
	Get(ctx context.Context, collection Collection) ([]byte, error)
	Set(ctx context.Context, collection Collection, payload []byte) error
	Close() error
}
