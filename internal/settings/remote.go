package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dgallion1/txtread/internal/pathstore"
)

// RemoteStore keeps settings as nodes under a prefix in a pathstore
// service. Values read or written are cached so Set can tell whether a
// write changed anything.
type RemoteStore struct {
	client  *pathstore.Client
	prefix  string
	timeout time.Duration
	t       *table
}

func NewRemoteStore(client *pathstore.Client, prefix string, timeout time.Duration) *RemoteStore {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RemoteStore{
		client:  client,
		prefix:  strings.TrimSuffix(prefix, "/"),
		timeout: timeout,
		t:       newTable(),
	}
}

func (s *RemoteStore) key(key string) string {
	return s.prefix + "/" + key
}

func (s *RemoteStore) Get(key string) (any, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	node, err := s.client.GetNode(ctx, s.key(key))
	if err != nil {
		return nil, fmt.Errorf("get setting %s: %w", key, err)
	}
	if node == nil {
		s.t.forget(key)
		return nil, nil
	}
	s.t.put(key, node.Value)
	return node.Value, nil
}

func (s *RemoteStore) Set(key string, value any) error {
	changed, prev, existed, err := s.t.put(key, value)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.client.PutNode(ctx, s.key(key), pathstore.NodeRequest{Value: value, Source: "txtread"}); err != nil {
		s.t.restore(key, prev, existed)
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	s.t.notify(key)
	return nil
}

func (s *RemoteStore) OnChange(fn func(key string)) {
	s.t.onChange(fn)
}

// Refresh drops the cache so the next Set always writes through.
func (s *RemoteStore) Refresh() error {
	s.t.replace(make(map[string]json.RawMessage))
	return nil
}
