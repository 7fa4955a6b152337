// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// FollowTable represents the 'follows' junction table
type FollowTable struct {
	Table       string
	FollowerID  string
	FollowingID string
	CreatedAt   string
}

// Follow is the schema definition for follows
var Follow = FollowTable{
	Table:       "follows",
	FollowerID:  `"followerId"`,
	FollowingID: `"followingId"`,
	CreatedAt:   `"createdAt"`,
}
