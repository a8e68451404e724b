package dto

import "time"

// UserRegisterRequest payload for new users. Name is optional.
type UserRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary is the public view returned on login.
type UserSummary struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// UserProfile is the public view returned by the profile endpoint.
type UserProfile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
