// Package journal layers typed, corruption-tolerant documents over a
// store.Persistence. Each feature describes its document once as a Key in the
// schema table (see schema.go) and goes through Load and Save; nothing else
// parses stored JSON.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"tableflip.dev/reignite/pkg/logging"
	"tableflip.dev/reignite/pkg/store"
)

// Key names one stored document and what it falls back to.
type Key[T any] struct {
	Name string
	// Default builds a fresh fallback value. Nil means the zero value.
	Default func() T
	// Valid rejects values that parsed but have the wrong shape. Nil accepts
	// everything that parses.
	Valid func(T) bool
}

func (k Key[T]) fallback() T {
	if k.Default == nil {
		var zero T
		return zero
	}
	return k.Default()
}

// Journal is the one handle on durable storage, built at start-up and
// handed to every feature.
type Journal struct {
	p   store.Persistence
	log *zap.Logger

	// mu serializes read-modify-write cycles from this process. Other
	// processes still race; the last writer wins.
	mu sync.Mutex
}

// New wraps p. A nil logger discards.
func New(p store.Persistence, log *zap.Logger) *Journal {
	if p == nil {
		p = store.Disabled()
	}
	return &Journal{p: p, log: logging.OrNop(log)}
}

// Persistence exposes the raw store, mostly for Watch.
func (j *Journal) Persistence() store.Persistence {
	return j.p
}

// Load returns the stored value for k. A missing key, unparsable JSON or a
// value rejected by k.Valid all resolve to k's default; Load never fails.
func Load[T any](j *Journal, k Key[T]) T {
	j.mu.Lock()
	defer j.mu.Unlock()
	return load(j, k)
}

func load[T any](j *Journal, k Key[T]) T {
	data, err := j.p.Read(k.Name)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			j.log.Debug("journal: read failed, using default", zap.String("key", k.Name), zap.Error(err))
		}
		return k.fallback()
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		j.log.Debug("journal: corrupt value, using default", zap.String("key", k.Name), zap.Error(err))
		return k.fallback()
	}
	if k.Valid != nil && !k.Valid(v) {
		j.log.Debug("journal: unexpected shape, using default", zap.String("key", k.Name))
		return k.fallback()
	}
	return v
}

// Save replaces the stored document for k with v. A failed write (disk
// full, read-only directory, disabled storage) is logged and dropped; the
// caller's in-memory v stays the only copy.
func Save[T any](j *Journal, k Key[T], v T) {
	_ = SaveErr(j, k, v)
}

// SaveErr is Save for callers that want to report lost durability.
func SaveErr[T any](j *Journal, k Key[T], v T) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return save(j, k, v)
}

func save[T any](j *Journal, k Key[T], v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		j.log.Warn("journal: encode failed", zap.String("key", k.Name), zap.Error(err))
		return fmt.Errorf("journal: encode %s: %w", k.Name, err)
	}
	if err := j.p.Write(k.Name, data); err != nil {
		j.log.Warn("journal: write dropped", zap.String("key", k.Name), zap.Error(err))
		return err
	}
	return nil
}

// Clear removes k so the next Load returns its default.
func Clear[T any](j *Journal, k Key[T]) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.p.Erase(k.Name); err != nil {
		j.log.Warn("journal: erase dropped", zap.String("key", k.Name), zap.Error(err))
		return err
	}
	return nil
}
