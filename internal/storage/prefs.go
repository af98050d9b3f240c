package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Prefs adapts a Store to the error-free key/value interface the session
// controller uses. Keys are namespaced so several players can share one
// database. Failures are logged and reads fall back to the default.
type Prefs struct {
	store  *Store
	prefix string
	logger *log.Logger
}

// NewPrefs creates a preference view of store. prefix may be empty.
func NewPrefs(store *Store, prefix string, logger *log.Logger) *Prefs {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Prefs{store: store, prefix: prefix, logger: logger}
}

func (p *Prefs) key(k string) string {
	if p.prefix == "" {
		return k
	}
	return p.prefix + ":" + k
}

// GetFloat returns the stored value or def.
func (p *Prefs) GetFloat(key string, def float64) float64 {
	v, err := p.store.GetFloat(p.key(key), def)
	if err != nil {
		p.logger.Warn("pref read failed", "key", p.key(key), "err", err)
		return def
	}
	return v
}

// SetFloat stores a value.
func (p *Prefs) SetFloat(key string, value float64) {
	if err := p.store.SetFloat(p.key(key), value); err != nil {
		p.logger.Warn("pref write failed", "key", p.key(key), "err", err)
	}
}

// DeleteKey removes a value.
func (p *Prefs) DeleteKey(key string) {
	if err := p.store.DeleteKey(p.key(key)); err != nil {
		p.logger.Warn("pref delete failed", "key", p.key(key), "err", err)
	}
}

// MemoryPrefs keeps preferences in memory. Used when no database is available.
type MemoryPrefs struct {
	mu     sync.Mutex
	values map[string]float64
}

// NewMemoryPrefs creates an empty in-memory preference store.
func NewMemoryPrefs() *MemoryPrefs {
	return &MemoryPrefs{values: make(map[string]float64)}
}

func (m *MemoryPrefs) GetFloat(key string, def float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[key]; ok {
		return v
	}
	return def
}

func (m *MemoryPrefs) SetFloat(key string, value float64) {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
}

func (m *MemoryPrefs) DeleteKey(key string) {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
}
