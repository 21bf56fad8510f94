package ledger

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	bolt "github.com/boltdb/bolt"
)

const salesBucket = "sales"

// BoltStore implements SaleStore on top of an embedded BoltDB file. Records
// are keyed by a monotonic bucket sequence so iteration order is insertion
// order regardless of receipt ID shape.
type BoltStore struct {
	db *bolt.DB
}

var _ SaleStore = (*BoltStore)(nil)

// NewBoltStore ensures the sales bucket exists and returns the store.
func NewBoltStore(db *bolt.DB) (*BoltStore, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(salesBucket))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s bucket: %w", salesBucket, err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Append(_ context.Context, sale Sale) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(salesBucket))
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		data, err := json.Marshal(sale)
		if err != nil {
			return err
		}
		return b.Put(sequenceKey(seq), data)
	})
}

func (s *BoltStore) FindByID(_ context.Context, id string) (*Sale, error) {
	var found *Sale
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(salesBucket)).ForEach(func(_, v []byte) error {
			var sale Sale
			if err := json.Unmarshal(v, &sale); err != nil {
				return err
			}
			if sale.ID == id {
				found = &sale
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrSaleNotFound
	}
	return found, nil
}

func (s *BoltStore) List(_ context.Context) ([]Sale, error) {
	sales := make([]Sale, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(salesBucket)).ForEach(func(_, v []byte) error {
			var sale Sale
			if err := json.Unmarshal(v, &sale); err != nil {
				return err
			}
			sales = append(sales, sale)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (s *BoltStore) ReplaceAll(_ context.Context, sales []Sale) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(salesBucket)); err != nil {
			return err
		}
		b, err := tx.CreateBucket([]byte(salesBucket))
		if err != nil {
			return err
		}
		for _, sale := range sales {
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			data, err := json.Marshal(sale)
			if err != nil {
				return err
			}
			if err := b.Put(sequenceKey(seq), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// sequenceKey encodes a bucket sequence number as a big-endian key so byte
// order matches numeric order.
func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
