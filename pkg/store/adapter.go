package store

import (
	"bytes"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"tableflip.dev/streamlist/pkg/entry"
)

const (
	// CurrentVersion is the envelope schema version written by Save.
	CurrentVersion = 1
	// DefaultKey is the key the watchlist is stored under.
	DefaultKey = "streamlist.items.v1"
)

// Envelope is the persisted form of the list.
type Envelope struct {
	Version int           `json:"version"`
	Items   []entry.Entry `json:"items"`
}

// Empty returns an envelope at the current version with no items.
func Empty() Envelope {
	return Envelope{Version: CurrentVersion, Items: []entry.Entry{}}
}

// RawEnvelope is what a Migration receives: the version found in the blob
// and the undecoded items. Blobs written before envelopes existed carry
// CurrentVersion and the whole stored value as Items.
type RawEnvelope struct {
	Version int
	Items   json.RawMessage
}

// Migration converts an outdated or legacy blob to the current envelope.
type Migration func(raw RawEnvelope) (Envelope, error)

// Adapter reads and writes envelopes in a KV. Failures never propagate:
// Load degrades to the fallback and Save reports false.
type Adapter struct {
	kv  KV
	log *zap.Logger
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithLogger sets the logger used to report swallowed failures.
func WithLogger(l *zap.Logger) AdapterOption {
	return func(a *Adapter) {
		if l != nil {
			a.log = l
		}
	}
}

// NewAdapter wraps kv.
func NewAdapter(kv KV, opts ...AdapterOption) *Adapter {
	a := &Adapter{kv: kv, log: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load reads the envelope stored at key.
//
// Absent, unreadable or non-JSON values, and JSON scalars, yield fallback.
// A value without a version field is treated as a legacy bare list and
// handed to migrate. A value at CurrentVersion is returned as stored; any
// other version goes through migrate. If migrate fails, fallback is returned.
func (a *Adapter) Load(key string, fallback Envelope, migrate Migration) Envelope {
	log := a.log.With(zap.String("key", key))

	raw, err := a.kv.Read(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warn("read failed, using fallback", zap.Error(err))
		}
		return fallback
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !json.Valid(raw) {
		log.Warn("stored value is not JSON, using fallback")
		return fallback
	}

	switch raw[0] {
	case '[':
		return a.migrate(log, RawEnvelope{Version: CurrentVersion, Items: raw}, fallback, migrate)
	case '{':
	default:
		log.Warn("stored value is not an object, using fallback")
		return fallback
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		log.Warn("decode envelope failed, using fallback", zap.Error(err))
		return fallback
	}
	rawVersion, ok := obj["version"]
	if !ok {
		return a.migrate(log, RawEnvelope{Version: CurrentVersion, Items: raw}, fallback, migrate)
	}

	var version float64
	if err := json.Unmarshal(rawVersion, &version); err != nil || version != CurrentVersion {
		return a.migrate(log, RawEnvelope{Version: int(version), Items: obj["items"]}, fallback, migrate)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Warn("decode items failed, using fallback", zap.Error(err))
		return fallback
	}
	return env
}

func (a *Adapter) migrate(log *zap.Logger, raw RawEnvelope, fallback Envelope, migrate Migration) Envelope {
	if migrate == nil {
		migrate = IdentityMigration
	}
	log.Debug("migrating stored value", zap.Int("from_version", raw.Version))
	env, err := migrate(raw)
	if err != nil {
		log.Warn("migration failed, using fallback", zap.Error(err))
		return fallback
	}
	return env
}

// Save writes env at key and reports whether the write succeeded.
func (a *Adapter) Save(key string, env Envelope) bool {
	data, err := json.Marshal(env)
	if err != nil {
		a.log.Warn("encode envelope failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := a.kv.Write(key, data); err != nil {
		a.log.Warn("write failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}
