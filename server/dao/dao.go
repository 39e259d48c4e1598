// Package dao provides data access objects for use in the ltgen workbench
// server.
package dao

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrConstraintViolation = errors.New("a uniqueness constraint was violated")
	ErrNotFound            = errors.New("the requested resource was not found")
	ErrDecodingFailure     = errors.New("field could not be decoded from DB storage format to model format")
)

// Store holds all the repositories backing the server.
type Store interface {
	Users() UserRepository
	Sessions() SessionRepository
	Grammars() GrammarRepository
	Close() error
}

type UserRepository interface {
	// Create creates a new User. All attributes except for auto-generated
	// fields are taken from the provided User.
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id uuid.UUID, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) (User, error)

	// Close closes the connection.
	Close() error
}

type User struct {
	ID             uuid.UUID     // PK, NOT NULL
	Username       string        // UNIQUE, NOT NULL
	Password       string        // NOT NULL
	Email          *mail.Address // NOT NULL
	Role           Role          // NOT NULL
	Created        time.Time     // NOT NULL
	Modified       time.Time
	LastLogoutTime time.Time // NOT NULL DEFAULT NOW()
	LastLoginTime  time.Time // NOT NULL
}

// SessionRepository tracks issued logins so that a password change or
// explicit logout can invalidate a JWT before its expiry. It carries no
// grammar or analysis state; that is GrammarRepository's job.
type SessionRepository interface {
	Create(ctx context.Context, sesh Session) (Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (Session, error)
	GetAllByUser(ctx context.Context, userID uuid.UUID) ([]Session, error)
	Delete(ctx context.Context, id uuid.UUID) (Session, error)
	Close() error
}

type Session struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Created time.Time
	Expires time.Time
}

// GrammarRepository persists the grammar text a workbench user has saved, by
// owner. It holds only source text; FIRST_k/FOLLOW_k/LL(k) results are
// recomputed on demand by tunas.Service rather than stored, since
// internal/grammar's parse and internal/ll's analysis are cheap relative to
// keeping derived state in sync with every edit.
type GrammarRepository interface {
	Create(ctx context.Context, g Grammar) (Grammar, error)
	GetByID(ctx context.Context, id uuid.UUID) (Grammar, error)
	GetAllByUser(ctx context.Context, userID uuid.UUID) ([]Grammar, error)
	Update(ctx context.Context, id uuid.UUID, g Grammar) (Grammar, error)
	Delete(ctx context.Context, id uuid.UUID) (Grammar, error)
	Close() error
}

type Grammar struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Name     string
	Text     string
	Created  time.Time
	Modified time.Time
}

type Role int

const (
	Guest Role = iota
	Unverified
	Normal

	Admin Role = 100
)

func (r Role) String() string {
	switch r {
	case Guest:
		return "guest"
	case Unverified:
		return "unverified"
	case Normal:
		return "normal"
	case Admin:
		return "admin"
	default:
		return fmt.Sprintf("Role(%d)", r)
	}
}

func ParseRole(s string) (Role, error) {
	check := strings.ToLower(s)
	switch check {
	case "guest":
		return Guest, nil
	case "unverified":
		return Unverified, nil
	case "normal":
		return Normal, nil
	case "admin":
		return Admin, nil
	default:
		return Guest, fmt.Errorf("must be one of 'guest', 'unverified', 'normal', or 'admin'")
	}
}
