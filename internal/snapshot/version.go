package snapshot

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const currentSchema uint32 = 1

func (s *snapshotter) schema(ctx context.Context) (uint32, error) {
	data, err := s.db.Get(ctx, string(s.keys.Version())).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, err
	}

	return binary.BigEndian.Uint32([]byte(data)), nil
}

func (s *snapshotter) writeSchema(ctx context.Context, version uint32) error {
	data := make([]byte, binary.Size(version))
	binary.BigEndian.PutUint32(data, version)

	return s.db.Set(ctx, string(s.keys.Version()), string(data), 0).Err()
}

func (s *snapshotter) checkSchema(ctx context.Context) error {
	v, err := s.schema(ctx)
	if err != nil {
		return err
	}

	switch {
	case v == 0:
		return s.writeSchema(ctx, currentSchema)
	case v > currentSchema:
		return fmt.Errorf("%w: %d", ErrUnsupportedSchema, v)
	}

	return nil
}
