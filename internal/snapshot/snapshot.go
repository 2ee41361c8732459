// Package snapshot persists the in-memory store to redis and restores
// it on startup, so a restart does not lose the lists.
package snapshot

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"github.com/lueurxax/forwardlist/internal/log"
	"github.com/lueurxax/forwardlist/internal/snapshot/keys"
)

type Snapshotter interface {
	Restore(ctx context.Context) error
	Start(ctx context.Context)
	Stop() error
}

type repo interface {
	Export(ctx context.Context) map[string][]string
	Restore(ctx context.Context, data map[string][]string)
}

type snapshotter struct {
	interval time.Duration

	db   *redis.Client
	keys keys.Builder

	st repo

	log log.Logger
}

func (s *snapshotter) Start(ctx context.Context) {
	go s.loop(ctx)
}

// Stop takes a last dump so nothing written after the final tick is lost.
func (s *snapshotter) Stop() error {
	return s.dump(context.Background())
}

func (s *snapshotter) Restore(ctx context.Context) error {
	if err := s.checkSchema(ctx); err != nil {
		return err
	}

	stored, err := s.scanKeys(ctx)
	if err != nil {
		return err
	}

	data := make(map[string][]string, len(stored))

	for _, key := range stored {
		name, err := s.keys.ListName(key)
		if err != nil {
			return err
		}

		payload, err := s.db.Get(ctx, key).Result()
		if err != nil {
			return err
		}

		values := make([]string, 0)
		if err = jsoniter.UnmarshalFromString(payload, &values); err != nil {
			return err
		}

		data[name] = values
	}

	s.st.Restore(ctx, data)

	s.log.WithField("lists", len(data)).Info("state restored")

	return nil
}

func (s *snapshotter) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("snapshot loop done")

			return
		case <-ticker.C:
			if err := s.dump(ctx); err != nil {
				s.log.WithError(err).Error("dump error")
			}
		}
	}
}

func (s *snapshotter) dump(ctx context.Context) error {
	data := s.st.Export(ctx)

	stored, err := s.scanKeys(ctx)
	if err != nil {
		return err
	}

	tx := s.db.TxPipeline()

	for name, values := range data {
		payload, err := jsoniter.MarshalToString(values)
		if err != nil {
			return err
		}

		tx.Set(ctx, string(s.keys.List(name)), payload, 0)
	}

	// drop keys for lists deleted since the previous dump
	for _, key := range stored {
		name, err := s.keys.ListName(key)
		if err != nil {
			return err
		}

		if _, ok := data[name]; !ok {
			tx.Del(ctx, key)
		}
	}

	if _, err = tx.Exec(ctx); err != nil {
		return err
	}

	s.log.WithField("lists", len(data)).Debug("state dumped")

	return nil
}

func (s *snapshotter) scanKeys(ctx context.Context) ([]string, error) {
	var cursor uint64

	stored := make([]string, 0)

	for {
		var batch []string
		var err error

		batch, cursor, err = s.db.Scan(ctx, cursor, string(s.keys.Lists())+"*", 0).Result()
		if err != nil {
			return nil, err
		}

		stored = append(stored, batch...)

		if cursor == 0 {
			break
		}
	}

	return stored, nil
}

func NewSnapshotter(client *redis.Client, st repo, interval time.Duration, logger log.Logger) Snapshotter {
	return &snapshotter{
		interval: interval,
		db:       client,
		keys:     keys.NewBuilder(),
		st:       st,
		log:      logger,
	}
}
