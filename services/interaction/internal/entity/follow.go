package entity

// FollowState reports the target's followers_count and the actor's following_count.
type FollowState struct {
	Following      bool `json:"following"`
	FollowersCount int  `json:"followers_count"`
	FollowingCount int  `json:"following_count"`
}
