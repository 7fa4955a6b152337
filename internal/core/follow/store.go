// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package follow

import "context"

type Repository interface {

	// # Edges

	/*
		Exists reports whether followerID follows followingID.

		Returns:
		  - bool: false when the edge is absent
		  - error: Persistence failures only
	*/
	Exists(context context.Context, followerID, followingID string) (bool, error)

	/*
		Insert creates the edge. A duplicate edge is a conflict.

		Returns:
		  - error: Conflict or persistence failures
	*/
	Insert(context context.Context, followerID, followingID string) error

	/*
		Delete removes the edge.

		Returns:
		  - error: NotFound when no row matched
	*/
	Delete(context context.Context, followerID, followingID string) error

	// # Listings

	// FollowerIDs returns who follows authorID, oldest edge first.
	FollowerIDs(context context.Context, authorID string) ([]string, error)

	// FollowingIDs returns who authorID follows, oldest edge first.
	FollowingIDs(context context.Context, authorID string) ([]string, error)

	CountFollowers(context context.Context, authorID string) (int, error)
	CountFollowing(context context.Context, authorID string) (int, error)
}
