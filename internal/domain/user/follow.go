package user

import (
	"fmt"
	"time"
)

// FollowEdge is the directed relation from follower to followed user. The
// storage layer enforces uniqueness per pair; self-follows never reach it.
type FollowEdge struct {
	id         uint
	followerID uint
	followedID uint
	createdAt  time.Time
}

// ErrSelfFollow is returned when a user attempts to follow or unfollow itself.
var ErrSelfFollow = fmt.Errorf("a user cannot follow itself")

func NewFollowEdge(followerID, followedID uint) (*FollowEdge, error) {
	if followerID == 0 {
		return nil, fmt.Errorf("follower ID is required")
	}
	if followedID == 0 {
		return nil, fmt.Errorf("followed user ID is required")
	}
	if followerID == followedID {
		return nil, ErrSelfFollow
	}

	return &FollowEdge{
		followerID: followerID,
		followedID: followedID,
		createdAt:  time.Now().UTC(),
	}, nil
}

func ReconstructFollowEdge(id, followerID, followedID uint, createdAt time.Time) (*FollowEdge, error) {
	if id == 0 {
		return nil, fmt.Errorf("follow edge ID cannot be zero")
	}
	if followerID == 0 || followedID == 0 {
		return nil, fmt.Errorf("follower and followed user IDs are required")
	}

	return &FollowEdge{
		id:         id,
		followerID: followerID,
		followedID: followedID,
		createdAt:  createdAt,
	}, nil
}

func (f *FollowEdge) ID() uint {
	return f.id
}

func (f *FollowEdge) FollowerID() uint {
	return f.followerID
}

func (f *FollowEdge) FollowedID() uint {
	return f.followedID
}

func (f *FollowEdge) CreatedAt() time.Time {
	return f.createdAt
}

func (f *FollowEdge) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("follow edge ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("follow edge ID cannot be zero")
	}
	f.id = id
	return nil
}
