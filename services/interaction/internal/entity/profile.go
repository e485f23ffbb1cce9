package entity

type Author struct {
	ID        string  `json:"id"`
	Username  *string `json:"username"`
	FullName  string  `json:"full_name"`
	AvatarURL string  `json:"avatar_url"`
}
