package types

import "time"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type CreateProfileRequest struct {
	Username    string     `json:"username" binding:"required,max=50"`
	FirstName   string     `json:"first_name" binding:"required,max=50"`
	LastName    string     `json:"last_name" binding:"required,max=50"`
	Bio         string     `json:"bio"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Location    string     `json:"location" binding:"max=255"`
	Phone       string     `json:"phone" binding:"max=20"`
}

// UpdateProfileRequest is a partial update: nil pointers leave fields alone.
type UpdateProfileRequest struct {
	Username    *string    `json:"username" binding:"omitempty,max=50"`
	FirstName   *string    `json:"first_name" binding:"omitempty,max=50"`
	LastName    *string    `json:"last_name" binding:"omitempty,max=50"`
	Bio         *string    `json:"bio"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Location    *string    `json:"location" binding:"omitempty,max=255"`
	Phone       *string    `json:"phone" binding:"omitempty,max=20"`
}

type CreatePostRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Content string `json:"content"`
}

type UpdatePostRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=255"`
	Content *string `json:"content"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}
