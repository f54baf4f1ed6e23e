package dto

type UserResponse struct {
	UserID    string   `json:"_id"`
	Email     string   `json:"email"`
	Role      []string `json:"role"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

type RegisterRequest struct {
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required"`
	Role     []string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest carries a partial user update. Empty email or
// password means "leave unchanged"; a nil role set likewise.
type UpdateUserRequest struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     []string `json:"role"`
}
