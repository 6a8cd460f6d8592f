package models

import "time"

// Follow is a directed follow edge: follower follows followee.
// The pair is unique; the row itself is the symmetric relationship, so
// "A in B.followers" and "B in A.following" can never disagree.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follow_pair;index" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followee User `gorm:"foreignKey:FolloweeID" json:"followee,omitempty"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}

// FollowRequest is a pending follow request against a private account.
// Only meaningful while the target's isPrivate flag is set.
type FollowRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RequesterID uint      `gorm:"not null;uniqueIndex:idx_follow_request_pair" json:"requester_id"`
	TargetID    uint      `gorm:"not null;uniqueIndex:idx_follow_request_pair;index" json:"target_id"`
	CreatedAt   time.Time `json:"created_at"`

	Requester User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Target    User `gorm:"foreignKey:TargetID" json:"target,omitempty"`
}

// TableName specifies the table name for GORM
func (FollowRequest) TableName() string {
	return "follow_requests"
}

// UserBlock records that blocker has blocked blocked.
type UserBlock struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlockerID uint      `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocker_id"`
	BlockedID uint      `gorm:"not null;uniqueIndex:idx_block_pair;index" json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (UserBlock) TableName() string {
	return "user_blocks"
}

// Relationship is the combined state of an ordered user pair (a, b).
// Block states override and exclude follow/pending states for the pair.
type Relationship string

const (
	RelationNone       Relationship = "none"
	RelationFollowing  Relationship = "following"        // a follows b
	RelationFollowedBy Relationship = "followed_by"      // b follows a
	RelationMutual     Relationship = "mutual"           // both directions
	RelationBlocked    Relationship = "blocked"          // a blocked b
	RelationBlockedBy  Relationship = "blocked_by"       // b blocked a
	RelationRequested  Relationship = "request_sent"     // a requested to follow b
	RelationRequestOf  Relationship = "request_received" // b requested to follow a
)
