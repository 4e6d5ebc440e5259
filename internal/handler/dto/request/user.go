package request

type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required,oneof=customer provider admin"`
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100"`
	Phone     string `json:"phone" binding:"max=20"`
	Address   string `json:"address" binding:"max=500"`
}

type UpdateUserRequest struct {
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100"`
	Phone     string `json:"phone" binding:"max=20"`
	Address   string `json:"address" binding:"max=500"`
}

type SetUserActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
