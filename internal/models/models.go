// Package models holds the data models shared by the server and the client.
package models

import "time"

// User is an identity record owned by the credential store. Users are
// created on register and never updated or deleted through the API.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Author is referenced by books and never mutated through the API.
type Author struct {
	ID        int32  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Book is a catalog record. Books are created only via the authorized
// addBook operation; Author is embedded when books are listed.
type Book struct {
	ID       int32   `json:"id"`
	Title    string  `json:"title"`
	ISBN     string  `json:"isbn"`
	AuthorID int32   `json:"authorId"`
	Author   *Author `json:"author,omitempty"`
	Price    float64 `json:"price"`
	Stock    int32   `json:"stock"`
}
