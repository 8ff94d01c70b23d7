package store

import (
	"encoding/json"

	"benv/pkg/errors"
	"benv/pkg/vars"

	bolt "go.etcd.io/bbolt"
)

// customVarRecord is the stored value for a custom definition. The name
// lives only in the key.
type customVarRecord struct {
	Kind      vars.Kind `json:"kind"`
	Separator string    `json:"separator"`
}

// CustomVarDefs returns every custom definition in name order.
func (s *Store) CustomVarDefs() ([]vars.CustomDef, error) {
	var out []vars.CustomDef
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCustomVars).ForEach(func(k, v []byte) error {
			var rec customVarRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return errors.Wrapf(err, errors.ErrStoreDecode,
					"failed to decode custom var %s", string(k))
			}
			out = append(out, vars.CustomDef{
				Name:      string(k),
				Kind:      rec.Kind,
				Separator: rec.Separator,
			})
			return nil
		})
	})
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrStoreDecode) {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrStoreRead, "failed to list custom vars")
	}
	return out, nil
}

// CustomVarDef loads one definition by name.
func (s *Store) CustomVarDef(name string) (vars.CustomDef, error) {
	var def vars.CustomDef
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketCustomVars).Get([]byte(name))
		if data == nil {
			return errors.Newf(errors.ErrDefNotFound, "custom var not found: %s", name)
		}
		var rec customVarRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return errors.Wrapf(err, errors.ErrStoreDecode,
				"failed to decode custom var %s", name)
		}
		def = vars.CustomDef{Name: name, Kind: rec.Kind, Separator: rec.Separator}
		return nil
	})
	return def, err
}

// SaveCustomVarDef writes def, overwriting any definition with the same
// name, and refreshes the catalog.
func (s *Store) SaveCustomVarDef(def vars.CustomDef) error {
	if def.Name == "" {
		return errors.New(errors.ErrInvalidInput, "custom var name must not be empty")
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(customVarRecord{Kind: def.Kind, Separator: def.Separator})
		if err != nil {
			return err
		}
		return tx.Bucket(bucketCustomVars).Put([]byte(def.Name), data)
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to save custom var %s", def.Name)
	}
	return s.refreshCatalog()
}

// DeleteCustomVarDef removes the named definition and refreshes the
// catalog.
func (s *Store) DeleteCustomVarDef(name string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCustomVars)
		if b.Get([]byte(name)) == nil {
			return errors.Newf(errors.ErrDefNotFound, "custom var not found: %s", name)
		}
		return b.Delete([]byte(name))
	})
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrDefNotFound) {
			return err
		}
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to delete custom var %s", name)
	}
	return s.refreshCatalog()
}
