package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	domain "github.com/bryanwahyu/automaton-legal/internal/domain/documents"
)

const keyPrefix = "legal:document:"

// DocumentRepository stores each document as one JSON value.
type DocumentRepository struct {
	rdb goredis.UniversalClient
	ttl time.Duration // zero keeps documents forever
}

func NewDocumentRepository(rdb goredis.UniversalClient, ttl time.Duration) *DocumentRepository {
	return &DocumentRepository{rdb: rdb, ttl: ttl}
}

// Connect opens a client and pings it.
func Connect(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{Addr: addr, Password: password, DB: db})
	ctx2, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx2).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func (r *DocumentRepository) Save(ctx context.Context, d *domain.Document) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, keyPrefix+string(d.ID), b, r.ttl).Err()
}

func (r *DocumentRepository) Get(ctx context.Context, id domain.DocumentID) (*domain.Document, error) {
	b, err := r.rdb.Get(ctx, keyPrefix+string(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	var d domain.Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	return &d, nil
}

// Check implements the health checker.
func (r *DocumentRepository) Check(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}
