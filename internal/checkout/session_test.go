package checkout

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/keymaster/pos/internal/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SessionManager_BeginAndGet(t *testing.T) {
	// given
	manager := NewSessionManager()
	employee := staff.Employee{ID: uuid.New(), Name: "Aisha", Role: staff.RoleSales}

	// when
	session := manager.Begin(employee)

	// then
	require.NotEmpty(t, session.Token)
	assert.Equal(t, employee, session.Employee)

	found, err := manager.Get(session.Token)
	require.NoError(t, err)
	assert.Same(t, session, found)
}

func Test_SessionManager_Get_UnknownToken(t *testing.T) {
	// given
	manager := NewSessionManager()

	// when
	_, err := manager.Get("no-such-token")

	// then
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func Test_SessionManager_End_DiscardsSessionAndCart(t *testing.T) {
	// given
	manager := NewSessionManager()
	session := manager.Begin(staff.Employee{ID: uuid.New(), Name: "Aisha"})
	err := session.WithCart(func(cart *Cart) error {
		return cart.AddItem(newTestProduct("House key blank", "10.00", 5))
	})
	require.NoError(t, err)

	// when
	manager.End(session.Token)

	// then
	_, err = manager.Get(session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func Test_SessionManager_SessionsAreIsolated(t *testing.T) {
	// given
	manager := NewSessionManager()
	first := manager.Begin(staff.Employee{ID: uuid.New(), Name: "Aisha"})
	second := manager.Begin(staff.Employee{ID: uuid.New(), Name: "Omar"})
	require.NotEqual(t, first.Token, second.Token)

	err := first.WithCart(func(cart *Cart) error {
		return cart.AddItem(newTestProduct("House key blank", "10.00", 5))
	})
	require.NoError(t, err)

	// when / then
	err = second.WithCart(func(cart *Cart) error {
		assert.True(t, cart.Empty())
		return nil
	})
	require.NoError(t, err)
}

func Test_Session_WithCart_SerializesAccess(t *testing.T) {
	// given
	manager := NewSessionManager()
	session := manager.Begin(staff.Employee{ID: uuid.New(), Name: "Aisha"})
	product := newTestProduct("House key blank", "10.00", 200)

	// when
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = session.WithCart(func(cart *Cart) error {
				return cart.AddItem(product)
			})
		}()
	}
	wg.Wait()

	// then
	err := session.WithCart(func(cart *Cart) error {
		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 100, lines[0].Quantity)
		return nil
	})
	require.NoError(t, err)
}
