package dto

// RegisterRequest 注册请求
type RegisterRequest struct {
	Nick     string `json:"nick" binding:"required,min=2,max=20"`
	Password string `json:"password" binding:"required,min=8,max=64"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Nick     string `json:"nick" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserProfile 用户信息
type UserProfile struct {
	ID         int64  `json:"id"`
	Nick       string `json:"nick"`
	ProfileImg string `json:"profile_img"`
	IsAdmin    bool   `json:"is_admin"`
	CreatedAt  string `json:"created_at"`
}

// UpdateProfileRequest 修改资料
type UpdateProfileRequest struct {
	Nick       string `json:"nick,omitempty"`
	ProfileImg string `json:"profile_img,omitempty"`
}
