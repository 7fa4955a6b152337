// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package capability names the narrow contracts services are composed from.

A concrete service implements exactly the capabilities it offers and richer
services depend only on the capabilities they consume:

  - [Reader] / [Writer]: the CRUD floor of every entity base service.
  - [RelationExpander]: attaches related entities to a root entity.
  - [CountAggregator]: derives a count from another entity's rows.

Composition is explicit delegation; nothing is merged structurally.
*/
package capability

import "context"

// Reader lists and fetches entities of type T.
type Reader[T any] interface {
	List(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, id string) (*T, error)
}

// Writer creates, patches and deletes entities. C is the create input, P the patch.
type Writer[C any, P any] interface {
	Create(ctx context.Context, input C) (string, error)
	Update(ctx context.Context, id string, patch P) error
	Delete(ctx context.Context, id string) error
}

// RelationExpander builds the expanded view V rooted at id.
type RelationExpander[V any] interface {
	Expand(ctx context.Context, id string) (*V, error)
}

// CountAggregator counts rows owned by (or pointing at) an author.
type CountAggregator interface {
	Count(ctx context.Context, authorID string) (int, error)
}

// CountFunc adapts an ordinary function to [CountAggregator].
type CountFunc func(ctx context.Context, authorID string) (int, error)

// Count calls f(ctx, authorID).
func (f CountFunc) Count(ctx context.Context, authorID string) (int, error) {
	return f(ctx, authorID)
}
