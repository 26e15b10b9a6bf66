package user

import "context"

// Repository persists user aggregates.
type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// Delete removes the user row only; owned content is deleted by the
	// cascading delete use case inside one transaction.
	Delete(ctx context.Context, id uint) error
}

// FollowRepository persists follow edges.
type FollowRepository interface {
	Save(ctx context.Context, edge *FollowEdge) error
	Exists(ctx context.Context, followerID, followedID uint) (bool, error)
	// Delete removes the edge for the pair; the returned bool reports whether
	// an edge existed, so unfollow can distinguish success from the
	// "was not following" no-op.
	Delete(ctx context.Context, followerID, followedID uint) (bool, error)
	// ListFollowedIDs returns the IDs of users the given user follows.
	ListFollowedIDs(ctx context.Context, followerID uint) ([]uint, error)
	ListFollowings(ctx context.Context, followerID uint) ([]*User, error)
	ListFollowers(ctx context.Context, followedID uint) ([]*User, error)
	// DeleteAllForUser removes every edge where the user is follower or followed.
	DeleteAllForUser(ctx context.Context, userID uint) error
}
