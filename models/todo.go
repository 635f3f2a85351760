package models

import "time"

// Todo is a to-do item owned by a user. Username is a denormalized copy of
// the owner's username so reads can filter without a join.
type Todo struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Completed     bool      `json:"completed"`
	CreatedAtTime time.Time `json:"createdAtTime"`
	UserID        int64     `json:"userId"`
	Username      string    `json:"username"`
}

// User is a registered account. Password holds the bcrypt hash and is never
// serialized into responses.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"-"`
}
