// Package staff manages employee records and cashier authentication.
package staff

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrEmployeeNotFound is returned when no employee exists with the given ID.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrInvalidCredentials is returned when email and password do not match
	// any employee record.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Role determines which screens an employee may access.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleSeniorTech Role = "senior_tech"
	RoleJuniorTech Role = "junior_tech"
	RoleSales      Role = "sales"
	RoleAccountant Role = "accountant"
	RoleEmployee   Role = "employee"
)

// Employee is a staff record. PasswordHash is a bcrypt hash; the plaintext
// password is never stored.
type Employee struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone,omitempty"`
	NationalID   string          `json:"nationalId,omitempty"`
	Address      string          `json:"address,omitempty"`
	SocialStatus string          `json:"socialStatus,omitempty"`
	Salary       decimal.Decimal `json:"salary"`
	Role         Role            `json:"role"`
	Specialty    string          `json:"specialty,omitempty"`
	JoinDate     string          `json:"joinDate,omitempty"`
	PasswordHash string          `json:"passwordHash,omitempty"`
}
