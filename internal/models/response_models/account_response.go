package response_models

type AccountResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	AvatarID  string `json:"avatar_id,omitempty"`
	Role      string `json:"role"`

	Interests []string `json:"interests,omitempty"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}
