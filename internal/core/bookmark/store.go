// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bookmark

import "context"

type Repository interface {
	Exists(context context.Context, authorID, targetID string) (bool, error)
	Insert(context context.Context, b *Bookmark) error
	Delete(context context.Context, authorID, targetID string) error

	// TargetIDs returns the bookmarked ids of authorID, oldest bookmark first.
	TargetIDs(context context.Context, authorID string) ([]string, error)
}
