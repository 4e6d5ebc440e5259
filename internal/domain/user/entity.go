package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated principal for all three roles. Customers carry
// profile fields the booking wizard pre-fills; providers and admins are
// tenant-scoped through companyID.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	companyID    *uuid.UUID
	firstName    string
	lastName     string
	phone        string
	address      string
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, companyID *uuid.UUID) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		companyID:    companyID,
		isActive:     true,
	}
}

func (u *User) WithProfile(firstName, lastName, phone, address string) *User {
	u.firstName = firstName
	u.lastName = lastName
	u.phone = phone
	u.address = address
	return u
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	companyID *uuid.UUID,
	firstName, lastName, phone, address string,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		companyID:    companyID,
		firstName:    firstName,
		lastName:     lastName,
		phone:        phone,
		address:      address,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) CompanyID() *uuid.UUID { return u.companyID }
func (u *User) FirstName() string     { return u.firstName }
func (u *User) LastName() string      { return u.lastName }
func (u *User) Phone() string         { return u.phone }
func (u *User) Address() string       { return u.address }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

func (u *User) FullName() string {
	switch {
	case u.firstName == "":
		return u.lastName
	case u.lastName == "":
		return u.firstName
	default:
		return u.firstName + " " + u.lastName
	}
}
