package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"

	"github.com/peterbourgon/diskv/v3"
)

var (
	// ErrNotFound is returned by Read when the key was never written.
	ErrNotFound = errors.New("store: key not found")

	// ErrDisabled is returned by Write on a persistence that cannot keep
	// anything durable.
	ErrDisabled = errors.New("store: storage disabled")

	validKey = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.]*$`)
)

// Persistence is the raw key/value contract shared by every journal. Each
// key holds one JSON document.
type Persistence interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Erase(key string) error
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		s, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = s
	}
	if s, ok := cfg.(*Settings); ok && s.Ephemeral {
		return NewMemory(), nil
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           basePath + ".tmp",
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// Other processes write the same files; a cache here would serve
		// their stale values.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Read(key string) ([]byte, error) {
	if !validKey.MatchString(key) {
		return nil, fmt.Errorf("store: invalid key %q", key)
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

// Write goes through diskv's TempDir so a concurrent Read sees either the
// old document or the new one.
func (p *persistence) Write(key string, val []byte) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("store: invalid key %q", key)
	}
	if err := p.d.Write(key, val); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Erase(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("store: invalid key %q", key)
	}
	if err := p.d.Erase(key); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if validKey.MatchString(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
