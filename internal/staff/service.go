package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeService defines the methods for managing staff records and
// authenticating cashiers.
type EmployeeService interface {
	// Authenticate verifies email and password against the stored bcrypt
	// hash. Returns ErrInvalidCredentials on any mismatch.
	Authenticate(ctx context.Context, email, password string) (*EmployeeDto, error)

	// FindByID retrieves a single employee by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*EmployeeDto, error)

	// FindAll returns all employees.
	FindAll(ctx context.Context) ([]EmployeeDto, error)

	// Create adds a new employee, hashing the supplied password.
	Create(ctx context.Context, employee EmployeeCreateDto) (*EmployeeDto, error)

	// Update modifies an existing employee. A non-empty password replaces
	// the stored hash; an empty one leaves it untouched.
	Update(ctx context.Context, employee EmployeeUpdateDto) (*EmployeeDto, error)

	// DeleteByID removes an employee by ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// Service implements EmployeeService.
type Service struct {
	repository EmployeeStore
}

var _ EmployeeService = (*Service)(nil)

// NewService creates a new instance of EmployeeService with the provided repository.
func NewService(repo EmployeeStore) *Service {
	return &Service{
		repository: repo,
	}
}

// EmployeeDto represents an employee without credential material.
type EmployeeDto struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone,omitempty"`
	NationalID   string          `json:"nationalId,omitempty"`
	Address      string          `json:"address,omitempty"`
	SocialStatus string          `json:"socialStatus,omitempty"`
	Salary       decimal.Decimal `json:"salary"`
	Role         string          `json:"role"`
	Specialty    string          `json:"specialty,omitempty"`
	JoinDate     string          `json:"joinDate,omitempty"`
}

// EmployeeCreateDto represents the data transfer object for creating a new employee.
type EmployeeCreateDto struct {
	Name         string          `json:"name"     validate:"required,max=100"`
	Email        string          `json:"email"    validate:"required,email"`
	Password     string          `json:"password" validate:"required,min=3"`
	Phone        string          `json:"phone"`
	NationalID   string          `json:"nationalId"`
	Address      string          `json:"address"`
	SocialStatus string          `json:"socialStatus" validate:"omitempty,oneof=single married divorced widowed"`
	Salary       decimal.Decimal `json:"salary"`
	Role         string          `json:"role"     validate:"required,oneof=admin manager senior_tech junior_tech sales accountant employee"`
	Specialty    string          `json:"specialty"`
	JoinDate     string          `json:"joinDate"`
}

// EmployeeUpdateDto represents the data transfer object for updating an employee.
type EmployeeUpdateDto struct {
	ID           string          `json:"id"       validate:"required,uuid"`
	Name         string          `json:"name"     validate:"required,max=100"`
	Email        string          `json:"email"    validate:"required,email"`
	Password     string          `json:"password"`
	Phone        string          `json:"phone"`
	NationalID   string          `json:"nationalId"`
	Address      string          `json:"address"`
	SocialStatus string          `json:"socialStatus" validate:"omitempty,oneof=single married divorced widowed"`
	Salary       decimal.Decimal `json:"salary"`
	Role         string          `json:"role"     validate:"required,oneof=admin manager senior_tech junior_tech sales accountant employee"`
	Specialty    string          `json:"specialty"`
	JoinDate     string          `json:"joinDate"`
}

// Authenticate verifies credentials against the stored bcrypt hash.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*EmployeeDto, error) {
	employee, err := s.repository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch employee by email: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return toDto(employee), nil
}

// FindByID retrieves an employee by ID and returns it as an EmployeeDto.
func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*EmployeeDto, error) {
	employee, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee by ID %s: %w", id, err)
	}
	return toDto(employee), nil
}

// FindAll retrieves all employees and returns them as EmployeeDtos.
func (s *Service) FindAll(ctx context.Context) ([]EmployeeDto, error) {
	employees, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	dtos := make([]EmployeeDto, len(employees))
	for i, e := range employees {
		dtos[i] = *toDto(&e)
	}
	return dtos, nil
}

// Create hashes the supplied password and stores a new employee record.
func (s *Service) Create(ctx context.Context, employee EmployeeCreateDto) (*EmployeeDto, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(employee.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	created, err := s.repository.Create(ctx, Employee{
		Name:         employee.Name,
		Email:        employee.Email,
		Phone:        employee.Phone,
		NationalID:   employee.NationalID,
		Address:      employee.Address,
		SocialStatus: employee.SocialStatus,
		Salary:       employee.Salary,
		Role:         Role(employee.Role),
		Specialty:    employee.Specialty,
		JoinDate:     employee.JoinDate,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return toDto(created), nil
}

// Update modifies an existing employee record.
func (s *Service) Update(ctx context.Context, employee EmployeeUpdateDto) (*EmployeeDto, error) {
	id, err := uuid.Parse(employee.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid employee ID %q: %w", employee.ID, err)
	}
	existing, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee with ID %s: %w", employee.ID, err)
	}

	hash := existing.PasswordHash
	if employee.Password != "" {
		newHash, err := bcrypt.GenerateFromPassword([]byte(employee.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hash = string(newHash)
	}

	updated, err := s.repository.Update(ctx, Employee{
		ID:           id,
		Name:         employee.Name,
		Email:        employee.Email,
		Phone:        employee.Phone,
		NationalID:   employee.NationalID,
		Address:      employee.Address,
		SocialStatus: employee.SocialStatus,
		Salary:       employee.Salary,
		Role:         Role(employee.Role),
		Specialty:    employee.Specialty,
		JoinDate:     employee.JoinDate,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update employee with ID %s: %w", employee.ID, err)
	}
	return toDto(updated), nil
}

// DeleteByID removes an employee by ID.
func (s *Service) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.repository.DeleteByID(ctx, id)
}

// toDto converts an Employee to an EmployeeDto, dropping credential material.
func toDto(employee *Employee) *EmployeeDto {
	return &EmployeeDto{
		ID:           employee.ID.String(),
		Name:         employee.Name,
		Email:        employee.Email,
		Phone:        employee.Phone,
		NationalID:   employee.NationalID,
		Address:      employee.Address,
		SocialStatus: employee.SocialStatus,
		Salary:       employee.Salary,
		Role:         string(employee.Role),
		Specialty:    employee.Specialty,
		JoinDate:     employee.JoinDate,
	}
}
