// Package cache provides a file-backed JSON cache with TTL expiry, used by
// the data clients to avoid refetching provider responses.
package cache

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Manager caches JSON-encodable values under a directory. A disabled
// manager is a no-op, every Get misses.
type Manager struct {
	dir     string
	ttl     time.Duration
	enabled bool
}

// NewManager creates a cache manager rooted at dir.
func NewManager(dir string, ttl time.Duration, enabled bool) *Manager {
	return &Manager{dir: dir, ttl: ttl, enabled: enabled}
}

// key derives a stable filename from the source, method and parameters.
func (m *Manager) key(source, method string, params any) string {
	data, _ := json.Marshal(params)
	return fmt.Sprintf("%s_%s_%x.json", source, method, md5.Sum(data))
}

// Get loads a cached value into result, returning false on a miss or an
// expired entry. Expired entries are removed.
func (m *Manager) Get(source, method string, params, result any) bool {
	if !m.enabled {
		return false
	}
	path := filepath.Join(m.dir, m.key(source, method, params))

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if time.Since(info.ModTime()) > m.ttl {
		os.Remove(path)
		return false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, result) == nil
}

// Set stores a value under the derived key.
func (m *Manager) Set(source, method string, params, data any) error {
	if !m.enabled {
		return nil
	}
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return err
	}
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(m.dir, m.key(source, method, params)), encoded, 0o644)
}
