package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.SubtaskStore using Redis. Goals and solutions
// are JSON-coded; the goal's JSON form becomes the key suffix, so any
// goal type with a stable JSON encoding works.
//
// A Redis-backed memo outlives a single run, which lets several runs
// over the same problem share solved subgoals. That is the caller's
// choice: the solver itself neither knows nor cares that the store
// persists.
type Store[G comparable, S any] struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type config struct {
	prefix string
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*config)

// WithTTL sets the expiration for memoized solutions.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for memoized solutions.
func WithPrefix(prefix string) Option {
	return func(c *config) {
		c.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New[G comparable, S any](address, password string, db int, opts ...Option) *Store[G, S] {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient[G, S](client, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient[G comparable, S any](client *backend.Client, opts ...Option) *Store[G, S] {
	cfg := config{
		prefix: "espalier:goal:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Store[G, S]{
		client: client,
		prefix: cfg.prefix,
		ttl:    cfg.ttl,
	}
}

func (s *Store[G, S]) key(goal G) (string, error) {
	data, err := json.Marshal(goal)
	if err != nil {
		return "", fmt.Errorf("failed to marshal goal: %w", err)
	}
	return s.prefix + string(data), nil
}

// Add records a solution, returning the previous one if present.
func (s *Store[G, S]) Add(ctx context.Context, goal G, solution S) (S, bool, error) {
	var previous S

	key, err := s.key(goal)
	if err != nil {
		return previous, false, err
	}

	data, err := json.Marshal(solution)
	if err != nil {
		return previous, false, fmt.Errorf("failed to marshal solution: %w", err)
	}

	// Two round trips instead of SET ... GET: the old-value reply is
	// only needed for contract fidelity and this path runs once per
	// solved goal.
	replaced := false
	val, err := s.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if err := json.Unmarshal([]byte(val), &previous); err != nil {
			return previous, false, fmt.Errorf("failed to unmarshal previous solution: %w", err)
		}
		replaced = true
	case !errors.Is(err, backend.Nil):
		return previous, false, fmt.Errorf("failed to get from redis: %w", err)
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return previous, false, fmt.Errorf("failed to save to redis: %w", err)
	}

	return previous, replaced, nil
}

// Get fetches a known solution.
func (s *Store[G, S]) Get(ctx context.Context, goal G) (S, bool, error) {
	var solution S

	key, err := s.key(goal)
	if err != nil {
		return solution, false, err
	}

	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return solution, false, nil
		}
		return solution, false, fmt.Errorf("failed to get from redis: %w", err)
	}

	if err := json.Unmarshal([]byte(val), &solution); err != nil {
		return solution, false, fmt.Errorf("failed to unmarshal solution: %w", err)
	}
	return solution, true, nil
}

// Contains reports whether a goal has a known solution.
func (s *Store[G, S]) Contains(ctx context.Context, goal G) (bool, error) {
	key, err := s.key(goal)
	if err != nil {
		return false, err
	}

	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check redis: %w", err)
	}
	return n > 0, nil
}

// Close closes the redis client.
func (s *Store[G, S]) Close() error {
	return s.client.Close()
}
