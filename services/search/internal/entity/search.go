package entity

import "time"

type Scope string

const (
	ScopeAll   Scope = "all"
	ScopePosts Scope = "posts"
	ScopeUsers Scope = "users"
)

// ParseScope maps the empty string to ScopeAll.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case "", ScopeAll:
		return ScopeAll, nil
	case ScopePosts, ScopeUsers:
		return Scope(s), nil
	}
	return "", ErrInvalidScope
}

func (s Scope) IncludesPosts() bool { return s == ScopeAll || s == ScopePosts }
func (s Scope) IncludesUsers() bool { return s == ScopeAll || s == ScopeUsers }

const (
	KindPost = "post"
	KindUser = "user"
)

type Author struct {
	ID        string  `json:"id"`
	Username  *string `json:"username"`
	FullName  string  `json:"full_name"`
	AvatarURL string  `json:"avatar_url"`
}

type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	LikeCount int       `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
	Author    *Author   `json:"author"`
}

type User struct {
	ID        string  `json:"id"`
	Username  *string `json:"username"`
	FullName  string  `json:"full_name"`
	Bio       string  `json:"bio"`
	AvatarURL string  `json:"avatar_url"`
}

// Result holds exactly one of Post or User, as named by Kind.
type Result struct {
	Kind string `json:"kind"`
	Post *Post  `json:"post,omitempty"`
	User *User  `json:"user,omitempty"`
}

type Response struct {
	Stale   bool     `json:"stale"`
	Results []Result `json:"results"`
}
