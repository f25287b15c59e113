package dto

// UserRegisterRequest payload for new accounts.
type UserRegisterRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	CompanyID *string `json:"company_id,omitempty"`
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the projection returned for account reads.
type UserResponse struct {
	ID        string  `json:"id"`
	CompanyID *string `json:"company_id,omitempty"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	State     string  `json:"state"`
}
