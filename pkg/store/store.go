// Package store persists profiles, custom variable definitions, and the
// reusable item catalog in a single bbolt database file. One bucket per
// record type; profile and definition records are keyed by name, items by
// a big-endian store sequence number. The store is also the mutation
// boundary for the variable catalog: every write to custom definitions
// refreshes the merged catalog view.
package store

import (
	"path/filepath"
	"time"

	"benv/pkg/errors"
	"benv/pkg/logging"
	"benv/pkg/paths"
	"benv/pkg/profile"
	"benv/pkg/vars"

	bolt "go.etcd.io/bbolt"
)

var log = logging.GetLogger("store")

// Bucket names.
var (
	bucketProfiles   = []byte("profiles")
	bucketCustomVars = []byte("custom_vars")
	bucketItems      = []byte("items")
)

// DefaultProfileName is the profile seeded into an empty database so the
// UI always has a selection target.
const DefaultProfileName = "default"

// Store wraps the bolt database handle. All methods are safe for use from
// a single process; bolt file-locks the database against others.
type Store struct {
	db      *bolt.DB
	catalog *vars.Catalog
}

// Open opens the database at path, creating the file and its directory as
// needed, and loads the variable catalog.
func Open(path string) (*Store, error) {
	if err := paths.Ensure(filepath.Dir(path)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreOpen,
			"failed to create data directory for %s", path)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreOpen, "failed to open database at %s", path)
	}

	s := &Store{db: db, catalog: vars.NewCatalog()}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Debug().Str("path", path).Msg("Store opened")
	return s, nil
}

// OpenDefault opens the database at the standard XDG location.
func OpenDefault() (*Store, error) {
	return Open(paths.DatabaseFile())
}

func (s *Store) init() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketProfiles, bucketCustomVars, bucketItems} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreOpen, "failed to create buckets")
	}
	return s.refreshCatalog()
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Catalog returns the variable catalog backed by this store's custom
// definitions. The same pointer stays valid across refreshes.
func (s *Store) Catalog() *vars.Catalog {
	return s.catalog
}

// EnsureSeed creates the default profile when the database holds no
// profiles at all. Existing databases are left untouched.
func (s *Store) EnsureSeed() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketProfiles)
		if k, _ := b.Cursor().First(); k != nil {
			return nil
		}
		log.Info().Str("profile", DefaultProfileName).Msg("Seeding empty database")
		return putProfile(b, profile.New(DefaultProfileName))
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to seed database")
	}
	return nil
}

func (s *Store) refreshCatalog() error {
	defs, err := s.CustomVarDefs()
	if err != nil {
		return err
	}
	s.catalog.Refresh(defs)
	return nil
}
