package models

type User struct {
	ID           int    `json:"id"`
	Name         string `json:"nombre"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
