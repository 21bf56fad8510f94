package staff

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEmployee(t *testing.T, service *Service, email, password string) *EmployeeDto {
	t.Helper()
	created, err := service.Create(context.Background(), EmployeeCreateDto{
		Name:     "Aisha",
		Email:    email,
		Password: password,
		Role:     "sales",
	})
	require.NoError(t, err)
	return created
}

func Test_EmployeeService_Authenticate(t *testing.T) {
	testCases := []struct {
		name        string
		email       string
		password    string
		expectError error
	}{
		{
			name:     "Success - correct credentials",
			email:    "aisha@key.com",
			password: "secret",
		},
		{
			name:     "Success - email lookup is case insensitive",
			email:    "AISHA@KEY.COM",
			password: "secret",
		},
		{
			name:        "Error - wrong password",
			email:       "aisha@key.com",
			password:    "guess",
			expectError: ErrInvalidCredentials,
		},
		{
			name:        "Error - unknown email reported as invalid credentials",
			email:       "nobody@key.com",
			password:    "secret",
			expectError: ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(NewInMemoryStore())
			createTestEmployee(t, service, "aisha@key.com", "secret")
			// when
			found, err := service.Authenticate(context.Background(), tc.email, tc.password)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Aisha", found.Name)
			assert.Equal(t, "sales", found.Role)
		})
	}
}

func Test_EmployeeService_Create_HashesPassword(t *testing.T) {
	// given
	store := NewInMemoryStore()
	service := NewService(store)

	// when
	created := createTestEmployee(t, service, "aisha@key.com", "secret")

	// then
	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)
	stored, err := store.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secret", stored.PasswordHash)
}

func Test_EmployeeService_Update_EmptyPasswordKeepsHash(t *testing.T) {
	// given
	store := NewInMemoryStore()
	service := NewService(store)
	created := createTestEmployee(t, service, "aisha@key.com", "secret")

	// when
	_, err := service.Update(context.Background(), EmployeeUpdateDto{
		ID:    created.ID,
		Name:  "Aisha A.",
		Email: "aisha@key.com",
		Role:  "manager",
	})

	// then the old password still authenticates
	require.NoError(t, err)
	found, err := service.Authenticate(context.Background(), "aisha@key.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Aisha A.", found.Name)
	assert.Equal(t, "manager", found.Role)
}

func Test_EmployeeService_Update_NewPasswordReplacesHash(t *testing.T) {
	// given
	store := NewInMemoryStore()
	service := NewService(store)
	created := createTestEmployee(t, service, "aisha@key.com", "secret")

	// when
	_, err := service.Update(context.Background(), EmployeeUpdateDto{
		ID:       created.ID,
		Name:     "Aisha",
		Email:    "aisha@key.com",
		Password: "rotated",
		Role:     "sales",
	})

	// then
	require.NoError(t, err)
	_, err = service.Authenticate(context.Background(), "aisha@key.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = service.Authenticate(context.Background(), "aisha@key.com", "rotated")
	assert.NoError(t, err)
}

func Test_EmployeeService_FindAll(t *testing.T) {
	// given
	service := NewService(NewInMemoryStore())
	createTestEmployee(t, service, "aisha@key.com", "secret")
	createTestEmployee(t, service, "omar@key.com", "secret")

	// when
	employees, err := service.FindAll(context.Background())

	// then
	require.NoError(t, err)
	assert.Len(t, employees, 2)
}

func Test_EmployeeService_DeleteByID(t *testing.T) {
	// given
	service := NewService(NewInMemoryStore())
	created := createTestEmployee(t, service, "aisha@key.com", "secret")
	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	// when
	err = service.DeleteByID(context.Background(), id)

	// then
	require.NoError(t, err)
	_, err = service.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}
