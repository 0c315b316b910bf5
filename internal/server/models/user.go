package models

import "time"

type User struct {
	ID        string
	UserName  string
	Salt      []byte
	Verifier  []byte
	Balance   int64
	CreatedAt time.Time
}
