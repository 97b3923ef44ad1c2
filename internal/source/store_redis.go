package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type implRedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore keeps each document as a JSON string under prefix+id. The
// connection is checked before returning.
func NewRedisStore(ctx context.Context, addr, password string, db int, prefix string) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("testing connection: %w", err)
	}

	return &implRedisStore{client: client, prefix: prefix}, nil
}

func (s *implRedisStore) Get(ctx context.Context, docID string) (Document, error) {
	if err := ValidateDocID(docID); err != nil {
		return Document{}, err
	}

	data, err := s.client.Get(ctx, s.prefix+docID).Bytes()
	if errors.Is(err, redis.Nil) {
		return Document{}, fmt.Errorf("%w: document %s", ErrNotFound, docID)
	}
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode document %s: %w", docID, err)
	}
	if doc.ID == "" {
		doc.ID = docID
	}
	return doc, nil
}

func (s *implRedisStore) Put(ctx context.Context, doc Document) error {
	if err := ValidateDocID(doc.ID); err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+doc.ID, data, 0).Err(); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

func (s *implRedisStore) Close() error {
	return s.client.Close()
}
