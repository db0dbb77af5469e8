package cart

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/sangeeth-21/velkani-admin/internal/domain/cart"
)

// Storage holds the serialized cart under a single key. Every save
// overwrites the whole value; there is no per-item persistence.
type Storage interface {
	Load(ctx context.Context) ([]cart.Item, error)
	Save(ctx context.Context, items []cart.Item) error
}

type RedisStorage struct {
	client *redis.Client
	key    string
}

func NewRedisStorage(client *redis.Client, key string) *RedisStorage {
	return &RedisStorage{client: client, key: key}
}

func (s *RedisStorage) Load(ctx context.Context) ([]cart.Item, error) {
	raw, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []cart.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// A corrupt payload starts the cart empty rather than blocking startup.
		log.Printf("cart: discarding corrupt stored cart: %v", err)
		return nil, nil
	}
	return items, nil
}

func (s *RedisStorage) Save(ctx context.Context, items []cart.Item) error {
	if items == nil {
		items = []cart.Item{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, raw, 0).Err()
}

// MemoryStorage keeps the serialized cart in process. It stands in for
// redis in tests.
type MemoryStorage struct {
	raw []byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load(ctx context.Context) ([]cart.Item, error) {
	if s.raw == nil {
		return nil, nil
	}
	var items []cart.Item
	if err := json.Unmarshal(s.raw, &items); err != nil {
		log.Printf("cart: discarding corrupt stored cart: %v", err)
		return nil, nil
	}
	return items, nil
}

func (s *MemoryStorage) Save(ctx context.Context, items []cart.Item) error {
	if items == nil {
		items = []cart.Item{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	s.raw = raw
	return nil
}

// Seed overwrites the stored payload directly, valid JSON or not.
func (s *MemoryStorage) Seed(raw []byte) { s.raw = raw }
