package models

// SignupForm is the body of POST /auth/signup.
type SignupForm struct {
	Name            string `form:"name" validate:"required,max=100"`
	Email           string `form:"email" validate:"required,email,max=254"`
	Password        string `form:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
	Next            string `form:"next"`
}

// LoginForm is the body of POST /auth/login.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

// VerifyForm is the body of POST /auth/verify-otp.
type VerifyForm struct {
	Email string `form:"email" validate:"required,email"`
	Code  string `form:"code" validate:"required,len=6,number"`
	Next  string `form:"next"`
}
