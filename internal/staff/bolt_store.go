package staff

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	bolt "github.com/boltdb/bolt"
	"github.com/google/uuid"
)

const employeesBucket = "employees"

// BoltStore implements EmployeeStore on top of an embedded BoltDB file.
type BoltStore struct {
	db *bolt.DB
}

var _ EmployeeStore = (*BoltStore)(nil)

// NewBoltStore ensures the employees bucket exists and returns the store.
func NewBoltStore(db *bolt.DB) (*BoltStore, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(employeesBucket))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s bucket: %w", employeesBucket, err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) FindByID(_ context.Context, id uuid.UUID) (*Employee, error) {
	var e Employee
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(employeesBucket)).Get([]byte(id.String()))
		if v == nil {
			return ErrEmployeeNotFound
		}
		return json.Unmarshal(v, &e)
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *BoltStore) FindByEmail(_ context.Context, email string) (*Employee, error) {
	var found *Employee
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(employeesBucket)).ForEach(func(_, v []byte) error {
			var e Employee
			if err := json.Unmarshal(v, &e); err != nil {
				return err
			}
			if strings.EqualFold(e.Email, email) {
				found = &e
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrEmployeeNotFound
	}
	return found, nil
}

func (s *BoltStore) FindAll(_ context.Context) ([]Employee, error) {
	employees := make([]Employee, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(employeesBucket)).ForEach(func(_, v []byte) error {
			var e Employee
			if err := json.Unmarshal(v, &e); err != nil {
				return err
			}
			employees = append(employees, e)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].Name < employees[j].Name })
	return employees, nil
}

func (s *BoltStore) Create(_ context.Context, employee Employee) (*Employee, error) {
	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return putEmployee(tx, employee)
	})
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *BoltStore) Update(_ context.Context, employee Employee) (*Employee, error) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(employeesBucket))
		if b.Get([]byte(employee.ID.String())) == nil {
			return ErrEmployeeNotFound
		}
		return putEmployee(tx, employee)
	})
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *BoltStore) DeleteByID(_ context.Context, id uuid.UUID) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(employeesBucket))
		key := []byte(id.String())
		if b.Get(key) == nil {
			return ErrEmployeeNotFound
		}
		return b.Delete(key)
	})
}

func (s *BoltStore) ReplaceAll(_ context.Context, employees []Employee) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(employeesBucket)); err != nil {
			return err
		}
		b, err := tx.CreateBucket([]byte(employeesBucket))
		if err != nil {
			return err
		}
		for _, e := range employees {
			data, err := json.Marshal(e)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(e.ID.String()), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func putEmployee(tx *bolt.Tx, employee Employee) error {
	data, err := json.Marshal(employee)
	if err != nil {
		return err
	}
	return tx.Bucket([]byte(employeesBucket)).Put([]byte(employee.ID.String()), data)
}
