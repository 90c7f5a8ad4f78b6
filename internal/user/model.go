package user

import "time"

type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}
