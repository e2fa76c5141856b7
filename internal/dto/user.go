package dto

// UpdateUserRequest PUT /users/:id; omitted fields keep their value
type UpdateUserRequest struct {
	FirstName *string `json:"FirstName" binding:"omitempty,max=100"`
	LastName  *string `json:"LastName"  binding:"omitempty,max=100"`
	Email     *string `json:"Email"     binding:"omitempty,max=255"`
	UserRole  *string `json:"UserRole"`
	CourseID  *int    `json:"CourseID"`
	Password  *string `json:"Password"`
}

// UpdateRoleRequest PUT /api/roles/:id
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
