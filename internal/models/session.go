package models

import "time"

// AuthMethod tells how a request was authenticated.
type AuthMethod string

// Authentication methods accepted by the gate.
const (
	AuthMethodSession AuthMethod = "session"
	AuthMethodToken   AuthMethod = "token"
)

// SessionRef is the minimal account reference kept server-side for a session.
type SessionRef struct {
	AccountID string `json:"accountId"`
	Role      Role   `json:"role"`
}

// Identity is the authenticated caller attached to a request context.
type Identity struct {
	AccountID string
	Role      Role
	Method    AuthMethod
}

// AccountKind names the collection an account lives in.
type AccountKind string

// Account collections.
const (
	KindTeacher AccountKind = "teacher"
	KindUser    AccountKind = "user"
)

// VerificationToken links an e-mail verification token to the account it was issued for.
type VerificationToken struct {
	ID          string
	AccountID   string
	AccountKind AccountKind
	Token       string
	ExpiresAt   time.Time
	CreatedAt   time.Time
}
