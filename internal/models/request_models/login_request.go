package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName string   `json:"first_name,omitempty"`
	AvatarURL string   `json:"avatar_url,omitempty"`
	AvatarID  string   `json:"avatar_id,omitempty"`
	Interests []string `json:"interests,omitempty"`
}
