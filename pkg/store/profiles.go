package store

import (
	"encoding/json"

	"benv/pkg/errors"
	"benv/pkg/profile"

	bolt "go.etcd.io/bbolt"
)

// putProfile serializes the entry list under the profile's name. The name
// lives only in the key.
func putProfile(b *bolt.Bucket, p profile.Profile) error {
	entries := p.Entries
	if entries == nil {
		entries = []profile.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return b.Put([]byte(p.Name), data)
}

func getProfile(b *bolt.Bucket, name string) (profile.Profile, error) {
	data := b.Get([]byte(name))
	if data == nil {
		return profile.Profile{}, errors.Newf(errors.ErrProfileNotFound, "profile not found: %s", name)
	}
	p := profile.Profile{Name: name}
	if err := json.Unmarshal(data, &p.Entries); err != nil {
		return profile.Profile{}, errors.Wrapf(err, errors.ErrStoreDecode,
			"failed to decode profile %s", name)
	}
	return p, nil
}

// Profiles returns every stored profile in name order.
func (s *Store) Profiles() ([]profile.Profile, error) {
	var out []profile.Profile
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketProfiles).ForEach(func(k, v []byte) error {
			p := profile.Profile{Name: string(k)}
			if err := json.Unmarshal(v, &p.Entries); err != nil {
				return errors.Wrapf(err, errors.ErrStoreDecode,
					"failed to decode profile %s", string(k))
			}
			out = append(out, p)
			return nil
		})
	})
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrStoreDecode) {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrStoreRead, "failed to list profiles")
	}
	return out, nil
}

// ProfileNames returns the stored profile names in name order.
func (s *Store) ProfileNames() ([]string, error) {
	var out []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketProfiles).ForEach(func(k, _ []byte) error {
			out = append(out, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStoreRead, "failed to list profile names")
	}
	return out, nil
}

// Profile loads one profile by name.
func (s *Store) Profile(name string) (profile.Profile, error) {
	var p profile.Profile
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		p, err = getProfile(tx.Bucket(bucketProfiles), name)
		return err
	})
	return p, err
}

// SaveProfile writes p, overwriting any profile with the same name.
func (s *Store) SaveProfile(p profile.Profile) error {
	if p.Name == "" {
		return errors.New(errors.ErrInvalidInput, "profile name must not be empty")
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return putProfile(tx.Bucket(bucketProfiles), p)
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to save profile %s", p.Name)
	}
	return nil
}

// DeleteProfile removes the named profile. Deleting the last remaining
// profile is refused so the UI always has a selection target.
func (s *Store) DeleteProfile(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketProfiles)
		if b.Get([]byte(name)) == nil {
			return errors.Newf(errors.ErrProfileNotFound, "profile not found: %s", name)
		}
		count := 0
		_ = b.ForEach(func(_, _ []byte) error {
			count++
			return nil
		})
		if count <= 1 {
			return errors.Newf(errors.ErrLastProfile, "cannot delete the last profile: %s", name)
		}
		if err := b.Delete([]byte(name)); err != nil {
			return errors.Wrapf(err, errors.ErrStoreWrite, "failed to delete profile %s", name)
		}
		return nil
	})
}

// RenameProfile moves a profile record to a new name in one transaction.
// Renaming a profile to its current name is a no-op success; renaming onto
// a different existing profile fails without touching either record.
func (s *Store) RenameProfile(oldName, newName string) error {
	if newName == "" {
		return errors.New(errors.ErrInvalidInput, "profile name must not be empty")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketProfiles)

		data := b.Get([]byte(oldName))
		if data == nil {
			return errors.Newf(errors.ErrProfileNotFound, "profile not found: %s", oldName)
		}
		if oldName == newName {
			return nil
		}
		if b.Get([]byte(newName)) != nil {
			return errors.Newf(errors.ErrProfileExists, "profile already exists: %s", newName)
		}

		if err := b.Put([]byte(newName), data); err != nil {
			return errors.Wrapf(err, errors.ErrStoreWrite, "failed to rename profile %s", oldName)
		}
		if err := b.Delete([]byte(oldName)); err != nil {
			return errors.Wrapf(err, errors.ErrStoreWrite, "failed to rename profile %s", oldName)
		}
		return nil
	})
}

// ReplaceVarParts rewrites the named variable's parts inside one profile
// with splice semantics, in a single transaction.
func (s *Store) ReplaceVarParts(profileName, varName string, parts []profile.Entry) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketProfiles)
		p, err := getProfile(b, profileName)
		if err != nil {
			return err
		}
		p.ReplaceVarParts(varName, parts)
		if err := putProfile(b, p); err != nil {
			return errors.Wrapf(err, errors.ErrStoreWrite,
				"failed to save profile %s", profileName)
		}
		return nil
	})
}
