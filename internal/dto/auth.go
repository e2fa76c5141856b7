package dto

// ── auth ──

// LoginRequest POST /auth/login
type LoginRequest struct {
	UserNumber int    `json:"UserNumber" binding:"required"`
	Password   string `json:"Password"   binding:"required"`
}

// RegisterRequest POST /auth/register and POST /users
type RegisterRequest struct {
	UserNumber int    `json:"UserNumber" binding:"required"`
	Password   string `json:"Password"   binding:"required"`
	FirstName  string `json:"FirstName"  binding:"required,max=100"`
	LastName   string `json:"LastName"   binding:"required,max=100"`
	Email      string `json:"Email"      binding:"required,max=255"`
	CourseID   *int   `json:"CourseID"`
}
