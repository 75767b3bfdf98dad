// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// KeyPrefix namespaces every key this service writes.
const KeyPrefix = "word_groups:"

// RedisCollection stores JSON documents of type T under one key per document.
// Ids are tracked in an index set so the collection can be scanned; extra
// index sets ("tags") narrow scans to a subset such as one player's records.
type RedisCollection[T any] struct {
	client redis.UniversalClient
	name   string
	ttl    time.Duration
}

// NewRedisCollection creates a collection. ttl of 0 keeps documents forever.
func NewRedisCollection[T any](client redis.UniversalClient, name string, ttl time.Duration) *RedisCollection[T] {
	return &RedisCollection[T]{client: client, name: name, ttl: ttl}
}

func (c *RedisCollection[T]) docKey(id string) string {
	return fmt.Sprintf("%s%s:%s", KeyPrefix, c.name, id)
}

func (c *RedisCollection[T]) indexKey(tag string) string {
	if tag == "" {
		return fmt.Sprintf("%s%s:_index", KeyPrefix, c.name)
	}
	return fmt.Sprintf("%s%s:_index:%s", KeyPrefix, c.name, tag)
}

// FindByID loads a document. A missing document yields ErrNotFound.
func (c *RedisCollection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	data, err := c.client.Get(ctx, c.docKey(id)).Result()
	if err == redis.Nil {
		return nil, NewError(ErrNotFound, "%s %s not found", c.name, id)
	}
	if err != nil {
		logrus.Errorf("failed to get %s %s: %v", c.name, id, err)
		return nil, fmt.Errorf("failed to get %s: %w", c.name, err)
	}

	var doc T
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		logrus.Errorf("failed to unmarshal %s %s: %v", c.name, id, err)
		return nil, fmt.Errorf("failed to unmarshal %s: %w", c.name, err)
	}
	return &doc, nil
}

// Create writes a new document and fails with ErrConflict if the id is taken.
func (c *RedisCollection[T]) Create(ctx context.Context, id string, doc *T, tags ...string) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", c.name, err)
	}

	created, err := c.client.SetNX(ctx, c.docKey(id), data, c.ttl).Result()
	if err != nil {
		logrus.Errorf("failed to create %s %s: %v", c.name, id, err)
		return fmt.Errorf("failed to create %s: %w", c.name, err)
	}
	if !created {
		return NewError(ErrConflict, "%s %s already exists", c.name, id)
	}

	pipe := c.client.TxPipeline()
	pipe.SAdd(ctx, c.indexKey(""), id)
	for _, tag := range tags {
		pipe.SAdd(ctx, c.indexKey(tag), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		logrus.Errorf("failed to index %s %s: %v", c.name, id, err)
		return fmt.Errorf("failed to index %s: %w", c.name, err)
	}

	logrus.Debugf("created %s %s", c.name, id)
	return nil
}

// Save overwrites a document, keeping the remaining TTL of documents that expire.
func (c *RedisCollection[T]) Save(ctx context.Context, id string, doc *T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", c.name, err)
	}

	ttl := time.Duration(0)
	if c.ttl > 0 {
		ttl = redis.KeepTTL
	}
	if err := c.client.Set(ctx, c.docKey(id), data, ttl).Err(); err != nil {
		logrus.Errorf("failed to save %s %s: %v", c.name, id, err)
		return fmt.Errorf("failed to save %s: %w", c.name, err)
	}

	logrus.Debugf("saved %s %s", c.name, id)
	return nil
}

// FindByFilter returns the documents under tag ("" for all) that match.
// A nil match returns everything. Ids whose document expired are dropped from the index.
func (c *RedisCollection[T]) FindByFilter(ctx context.Context, tag string, match func(*T) bool) ([]*T, error) {
	index := c.indexKey(tag)
	ids, err := c.client.SMembers(ctx, index).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", c.name, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.docKey(id)
	}
	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", c.name, err)
	}

	var (
		docs  []*T
		stale []interface{}
	)
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		var doc T
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			logrus.Warnf("skipping unreadable %s %s: %v", c.name, ids[i], err)
			continue
		}
		if match == nil || match(&doc) {
			docs = append(docs, &doc)
		}
	}

	if len(stale) > 0 {
		if err := c.client.SRem(ctx, index, stale...).Err(); err != nil {
			logrus.Warnf("failed to prune %d expired %s ids: %v", len(stale), c.name, err)
		}
	}
	return docs, nil
}
