// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package follow manages the directed "author follows author" graph.

An edge (followerId, followingId) exists at most once and never points at its own
source. Listings of the opposite side enriched with author data are composed in the
aggregate package.
*/
package follow

// Edge is a row of the follows table.
type Edge struct {
	FollowerID  string `json:"followerId"`
	FollowingID string `json:"followingId"`
}

const (
	FieldFollowerID  = "followerId"
	FieldFollowingID = "followingId"
)
