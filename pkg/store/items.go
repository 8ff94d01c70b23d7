package store

import (
	"encoding/binary"
	"encoding/json"

	"benv/pkg/errors"
	"benv/pkg/profile"

	bolt "go.etcd.io/bbolt"
)

// itemKey encodes an item id as a big-endian key so bolt's byte order is
// creation order.
func itemKey(id uint64) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], id)
	return k[:]
}

// Items returns the item catalog in creation order.
func (s *Store) Items() ([]profile.Item, error) {
	var out []profile.Item
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketItems).ForEach(func(k, v []byte) error {
			var it profile.Item
			if err := json.Unmarshal(v, &it); err != nil {
				return errors.Wrap(err, errors.ErrStoreDecode, "failed to decode item")
			}
			it.ID = binary.BigEndian.Uint64(k)
			out = append(out, it)
			return nil
		})
	})
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrStoreDecode) {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrStoreRead, "failed to list items")
	}
	return out, nil
}

// AddItem stores a new item and returns it with the assigned id.
func (s *Store) AddItem(it profile.Item) (profile.Item, error) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketItems)
		id, err := b.NextSequence()
		if err != nil {
			return err
		}
		it.ID = id
		data, err := json.Marshal(it)
		if err != nil {
			return err
		}
		return b.Put(itemKey(id), data)
	})
	if err != nil {
		return profile.Item{}, errors.Wrap(err, errors.ErrStoreWrite, "failed to add item")
	}
	return it, nil
}

// UpdateItem overwrites the stored record for it.ID.
func (s *Store) UpdateItem(it profile.Item) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketItems)
		if b.Get(itemKey(it.ID)) == nil {
			return errors.Newf(errors.ErrItemNotFound, "item not found: %d", it.ID)
		}
		data, err := json.Marshal(it)
		if err != nil {
			return errors.Wrap(err, errors.ErrStoreWrite, "failed to encode item")
		}
		if err := b.Put(itemKey(it.ID), data); err != nil {
			return errors.Wrap(err, errors.ErrStoreWrite, "failed to update item")
		}
		return nil
	})
}

// DeleteItem removes the item with the given id.
func (s *Store) DeleteItem(id uint64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketItems)
		if b.Get(itemKey(id)) == nil {
			return errors.Newf(errors.ErrItemNotFound, "item not found: %d", id)
		}
		if err := b.Delete(itemKey(id)); err != nil {
			return errors.Wrap(err, errors.ErrStoreWrite, "failed to delete item")
		}
		return nil
	})
}
