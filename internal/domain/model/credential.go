package model

import "time"

// Credential pairs an identity (email) with the bcrypt hash of its secret.
// Created only during registration, in the same transaction as the User row,
// and never updated or deleted afterwards.
type Credential struct {
	ID         int64
	Identity   string
	SecretHash string
	CreatedAt  time.Time
}
