package dto

// RegisterRequest là DTO cho yêu cầu đăng ký
type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// LoginRequest là DTO cho yêu cầu đăng nhập
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleAuthRequest là DTO cho đăng nhập bằng Google
type GoogleAuthRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UserResponse là DTO cho thông tin user trả về
type UserResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        int    `json:"role"`
	Status      int    `json:"status"`
}

// ChangeUserStatusRequest đổi trạng thái tài khoản
type ChangeUserStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}
