package commands

import (
	"io"

	"go.uber.org/zap"

	"tableflip.dev/streamlist/pkg/list"
	"tableflip.dev/streamlist/pkg/logging"
	"tableflip.dev/streamlist/pkg/store"
)

// session is the opened configuration, storage and list store for one
// command invocation.
type session struct {
	cfg  store.Config
	kv   store.KV
	log  *zap.Logger
	list *list.Store
}

func openSession() (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(logging.Options{Level: cfg.LogLevel()})
	if err != nil {
		return nil, err
	}
	kv, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}

	adapter := store.NewAdapter(kv, store.WithLogger(logging.Component(log, "store")))
	ls := list.Open(adapter,
		list.WithKey(cfg.Key()),
		list.WithLogger(logging.Component(log, "list")))

	return &session{cfg: cfg, kv: kv, log: log, list: ls}, nil
}

// watcher is the change feed of the backend, nil when it has none.
func (s *session) watcher() store.Watcher {
	w, _ := s.kv.(store.Watcher)
	return w
}

func (s *session) lock() *store.Lock {
	return store.NewLock(s.cfg.BasePath())
}

func (s *session) Close() {
	if c, ok := s.kv.(io.Closer); ok {
		_ = c.Close()
	}
	_ = s.log.Sync()
}
