package kv

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/backoffice-service/internal/models/m_kv"
	"github.com/light-bringer/backoffice-service/internal/pkg/query"
)

var _ Store = (*SpannerStore)(nil)

// SpannerStore keeps every key as one row of the kv_entries table.
type SpannerStore struct {
	client *spanner.Client
	model  *m_kv.Model
}

// NewSpannerStore opens a Spanner client for the given database path.
func NewSpannerStore(ctx context.Context, database string) (*SpannerStore, error) {
	client, err := spanner.NewClient(ctx, database)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}
	return NewSpannerStoreFromClient(client), nil
}

// NewSpannerStoreFromClient wraps an existing client.
func NewSpannerStoreFromClient(client *spanner.Client) *SpannerStore {
	return &SpannerStore{
		client: client,
		model:  m_kv.NewModel(),
	}
}

// Get reads a single row by primary key.
func (s *SpannerStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	row, err := s.client.Single().ReadRow(ctx, m_kv.TableName, spanner.Key{key}, []string{m_kv.EntryValue})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var value string
	if err := row.Column(0, &value); err != nil {
		return nil, false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Put upserts the row for key.
func (s *SpannerStore) Put(ctx context.Context, key string, value []byte) error {
	mut := s.model.UpsertMut(&m_kv.Data{
		EntryKey:   key,
		EntryValue: string(value),
	})
	if _, err := s.client.Apply(ctx, []*spanner.Mutation{mut}); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes the row for key.
func (s *SpannerStore) Delete(ctx context.Context, key string) error {
	if _, err := s.client.Apply(ctx, []*spanner.Mutation{s.model.DeleteMut(key)}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Keys runs a STARTS_WITH scan over the primary key.
func (s *SpannerStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	stmt := query.From(m_kv.TableName).
		Select(m_kv.EntryKey).
		Where(query.StartsWith(m_kv.EntryKey, prefix)).
		OrderBy(m_kv.EntryKey, query.Asc).
		Build()

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var keys []string
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list keys with prefix %s: %w", prefix, err)
		}

		var key string
		if err := row.Columns(&key); err != nil {
			return nil, fmt.Errorf("failed to parse key: %w", err)
		}
		keys = append(keys, key)
	}

	return keys, nil
}

// Close closes the Spanner client.
func (s *SpannerStore) Close() error {
	s.client.Close()
	return nil
}
