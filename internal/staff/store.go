package staff

import (
	"context"

	"github.com/google/uuid"
)

// EmployeeStore is an interface for employee storage operations.
type EmployeeStore interface {
	// FindByID retrieves a single employee by ID.
	// Returns ErrEmployeeNotFound if no employee exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)

	// FindByEmail retrieves a single employee by email.
	// Returns ErrEmployeeNotFound if no employee has the given email.
	FindByEmail(ctx context.Context, email string) (*Employee, error)

	// FindAll returns all employees.
	FindAll(ctx context.Context) ([]Employee, error)

	// Create adds a new employee record.
	Create(ctx context.Context, employee Employee) (*Employee, error)

	// Update modifies an existing employee record.
	// Returns ErrEmployeeNotFound if no employee exists with the given ID.
	Update(ctx context.Context, employee Employee) (*Employee, error)

	// DeleteByID removes an employee by ID.
	// Returns ErrEmployeeNotFound if no employee exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// ReplaceAll overwrites all employee records. Used by backup restore.
	ReplaceAll(ctx context.Context, employees []Employee) error
}
