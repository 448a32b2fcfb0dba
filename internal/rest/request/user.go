package request

// Register is the body of POST /users.
type Register struct {
	User struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	} `json:"user" binding:"required"`
}

// Login is the body of POST /users/login.
type Login struct {
	User struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	} `json:"user" binding:"required"`
}

// UpdateUser is the body of PUT /user. Absent fields are left untouched.
type UpdateUser struct {
	User struct {
		Email    *string `json:"email"`
		Username *string `json:"username"`
		Bio      *string `json:"bio"`
		Image    *string `json:"image"`
		Password *string `json:"password"`
	} `json:"user" binding:"required"`
}
