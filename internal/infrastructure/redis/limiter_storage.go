// Package redis almacena el estado compartido del rate limiter de Fiber entre réplicas.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
)

var _ fiber.Storage = (*LimiterStorage)(nil)

const (
	defaultPrefix = "kabs:limiter:"
	opTimeout     = 2 * time.Second
)

// LimiterStorage implementa fiber.Storage sobre Redis. Las claves llevan un prefijo para poder limpiarlas con Reset.
type LimiterStorage struct {
	client *goredis.Client
	prefix string
}

// NewLimiterStorage conecta a redisURL (redis://...) y verifica la conexión con PING.
func NewLimiterStorage(redisURL string) (*LimiterStorage, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}
	client := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: connect: %w", err)
	}
	return &LimiterStorage{client: client, prefix: defaultPrefix}, nil
}

func (s *LimiterStorage) key(k string) string { return s.prefix + k }

// Get devuelve nil, nil si la clave no existe.
func (s *LimiterStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	return val, err
}

// Set guarda val; exp 0 significa sin expiración.
func (s *LimiterStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return s.client.Set(ctx, s.key(key), val, exp).Err()
}

func (s *LimiterStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return s.client.Del(ctx, s.key(key)).Err()
}

// Reset borra solo las claves con el prefijo propio.
func (s *LimiterStorage) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *LimiterStorage) Close() error {
	return s.client.Close()
}

// Ping verifica la conexión (health check).
func (s *LimiterStorage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
