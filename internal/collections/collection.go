package collections

import (
	"context"
	"encoding/json"
	"log/slog"

	"study-planner/internal/errors"
	"study-planner/internal/store"
)

// schemaVersion tags every persisted collection payload. A payload that
// fails to decode, or carries a different version, is treated as a shape
// mismatch: the discrepancy is logged and the collection falls back to its
// baseline data rather than crashing the load.
const schemaVersion = 1

// envelope wraps a collection on the wire with its schema version.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// collection is the shared machinery behind every typed store: an in-memory
// value of type T with write-through persistence to one named blob.
type collection[T any] struct {
	store  store.Store
	name   store.Collection
	logger *slog.Logger
	items  T
}

// load populates the in-memory value from the backing store. A missing
// collection takes the baseline and, when seed is set, writes it back so
// the store is initialized for the next session. Any other failure falls
// back to the baseline without writing.
func (c *collection[T]) load(ctx context.Context, baseline func() T, seed bool) {
	payload, err := c.store.Get(ctx, c.name)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			c.items = baseline()
			if seed {
				if perr := c.persist(ctx); perr != nil {
					c.logger.Warn("seeding collection failed", "collection", c.name, "error", perr)
				}
			}
			return
		}
		c.logger.Warn("loading collection failed, using baseline", "collection", c.name, "error", err)
		c.items = baseline()
		return
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		c.logger.Warn("collection payload is malformed, using baseline", "collection", c.name, "error", err)
		c.items = baseline()
		return
	}
	if env.Version != schemaVersion {
		c.logger.Warn("collection schema version mismatch, using baseline",
			"collection", c.name, "got", env.Version, "want", schemaVersion)
		c.items = baseline()
		return
	}

	var decoded T
	if err := json.Unmarshal(env.Data, &decoded); err != nil {
		c.logger.Warn("collection data does not match schema, using baseline", "collection", c.name, "error", err)
		c.items = baseline()
		return
	}
	c.items = decoded
}

// persist writes the in-memory value wholesale. Callers update memory
// first; a persist failure leaves the session state authoritative.
func (c *collection[T]) persist(ctx context.Context) error {
	data, err := json.Marshal(c.items)
	if err != nil {
		return errors.NewStoreError("encode "+string(c.name), err)
	}
	payload, err := json.Marshal(envelope{Version: schemaVersion, Data: data})
	if err != nil {
		return errors.NewStoreError("encode "+string(c.name), err)
	}
	return c.store.Set(ctx, c.name, payload)
}
