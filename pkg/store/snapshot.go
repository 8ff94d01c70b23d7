package store

import (
	"io"
	"os"

	"benv/pkg/errors"
	"benv/pkg/profile"
	"benv/pkg/vars"

	"gopkg.in/yaml.v3"
)

// Snapshot is the full exportable store state, in the order records are
// listed: profiles by name, custom definitions by name, items by creation.
type Snapshot struct {
	Profiles   []profile.Profile `yaml:"profiles"`
	CustomVars []vars.CustomDef  `yaml:"custom_vars,omitempty"`
	Items      []profile.Item    `yaml:"items,omitempty"`
}

// Snapshot reads the whole store.
func (s *Store) Snapshot() (*Snapshot, error) {
	profiles, err := s.Profiles()
	if err != nil {
		return nil, err
	}
	defs, err := s.CustomVarDefs()
	if err != nil {
		return nil, err
	}
	items, err := s.Items()
	if err != nil {
		return nil, err
	}
	return &Snapshot{Profiles: profiles, CustomVars: defs, Items: items}, nil
}

// Restore loads a snapshot back into the store. Profiles and custom
// definitions overwrite records with matching names and leave others in
// place; the item catalog, whose ids are not portable across databases,
// is replaced wholesale so it matches the snapshot exactly.
func (s *Store) Restore(snap *Snapshot) error {
	for _, p := range snap.Profiles {
		if err := s.SaveProfile(p); err != nil {
			return err
		}
	}
	for _, def := range snap.CustomVars {
		if err := s.SaveCustomVarDef(def); err != nil {
			return err
		}
	}

	if snap.Items != nil {
		items, err := s.Items()
		if err != nil {
			return err
		}
		for _, it := range items {
			if err := s.DeleteItem(it.ID); err != nil {
				return err
			}
		}
		for _, it := range snap.Items {
			if _, err := s.AddItem(it); err != nil {
				return err
			}
		}
	}

	log.Info().
		Int("profiles", len(snap.Profiles)).
		Int("custom_vars", len(snap.CustomVars)).
		Int("items", len(snap.Items)).
		Msg("Restored snapshot")
	return nil
}

// WriteSnapshot marshals the snapshot as YAML to w.
func WriteSnapshot(w io.Writer, snap *Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return errors.Wrap(err, errors.ErrSnapshotWrite, "failed to encode snapshot")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, errors.ErrSnapshotWrite, "failed to finish snapshot")
	}
	return nil
}

// ReadSnapshot parses a YAML snapshot from r.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSnapshotRead, "failed to read snapshot")
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(err, errors.ErrSnapshotRead, "failed to parse snapshot")
	}
	return &snap, nil
}

// ReadSnapshotFile parses a YAML snapshot from the file at path.
func ReadSnapshotFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSnapshotRead, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()
	return ReadSnapshot(f)
}
