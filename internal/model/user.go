package model

type User struct {
	ID       int     `json:"id"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

type UserCreateDto struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}
