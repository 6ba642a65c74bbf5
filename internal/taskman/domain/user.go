package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string // stored lowercase, unique
	PasswordHash string // argon2 encoded
	Bio          string
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
