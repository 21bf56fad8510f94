package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	bolt "github.com/boltdb/bolt"
	"github.com/google/uuid"
)

const productsBucket = "products"

// BoltStore implements ProductStore on top of an embedded BoltDB file.
// Every record is stored as JSON under its product ID.
type BoltStore struct {
	db *bolt.DB
}

var _ ProductStore = (*BoltStore)(nil)

// NewBoltStore ensures the products bucket exists and returns the store.
func NewBoltStore(db *bolt.DB) (*BoltStore, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(productsBucket))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s bucket: %w", productsBucket, err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) FindByID(_ context.Context, id uuid.UUID) (*Product, error) {
	var p Product
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(productsBucket)).Get([]byte(id.String()))
		if v == nil {
			return ErrProductNotFound
		}
		return json.Unmarshal(v, &p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *BoltStore) FindAll(_ context.Context) ([]Product, error) {
	products := make([]Product, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(productsBucket)).ForEach(func(_, v []byte) error {
			var p Product
			if err := json.Unmarshal(v, &p); err != nil {
				return err
			}
			products = append(products, p)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (s *BoltStore) Create(_ context.Context, product Product) (*Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return putProduct(tx, product)
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *BoltStore) Update(_ context.Context, product Product) (*Product, error) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(productsBucket))
		if b.Get([]byte(product.ID.String())) == nil {
			return ErrProductNotFound
		}
		return putProduct(tx, product)
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *BoltStore) DeleteByID(_ context.Context, id uuid.UUID) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(productsBucket))
		key := []byte(id.String())
		if b.Get(key) == nil {
			return ErrProductNotFound
		}
		return b.Delete(key)
	})
}

// ApplyDecrements runs inside a single write transaction: either every line's
// stock is reduced, or the transaction rolls back and nothing changes.
func (s *BoltStore) ApplyDecrements(_ context.Context, decrements []StockDecrement) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(productsBucket))
		for _, dec := range decrements {
			key := []byte(dec.ProductID.String())
			v := b.Get(key)
			if v == nil {
				return fmt.Errorf("product %s: %w", dec.ProductID, ErrProductNotFound)
			}
			var p Product
			if err := json.Unmarshal(v, &p); err != nil {
				return err
			}
			if p.Stock < dec.Quantity {
				return fmt.Errorf("product %s: available %d, requested %d: %w",
					dec.ProductID, p.Stock, dec.Quantity, ErrInsufficientStock)
			}
			p.Stock -= dec.Quantity
			data, err := json.Marshal(p)
			if err != nil {
				return err
			}
			if err := b.Put(key, data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BoltStore) ReplaceAll(_ context.Context, products []Product) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(productsBucket)); err != nil {
			return err
		}
		b, err := tx.CreateBucket([]byte(productsBucket))
		if err != nil {
			return err
		}
		for _, p := range products {
			data, err := json.Marshal(p)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(p.ID.String()), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func putProduct(tx *bolt.Tx, product Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return tx.Bucket([]byte(productsBucket)).Put([]byte(product.ID.String()), data)
}
