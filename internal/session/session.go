package session

import (
	"encoding/json"
	"github.com/pkg/errors"
	"os"
	"pricewatch/internal/model"
)

// Store persists the logged-in user as a single JSON record at Path.
// It is the Go stand-in for the browser localStorage entry the dashboard
// used to keep: no expiry, cleared only by an explicit logout.
type Store struct {
	Path string
}

func (s Store) Save(u model.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return errors.Wrapf(err, "error marshalling User with ID: %d", u.ID)
	}
	if err := os.WriteFile(s.Path, data, 0600); err != nil {
		return errors.Wrapf(err, "error writing session file: %s", s.Path)
	}
	return nil
}

// Load returns the persisted user, or nil when no session exists. A file
// that does not decode to a user record is discarded on the spot and treated
// the same as no session; it is never surfaced as an error.
func (s Store) Load() (*model.User, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "error reading session file: %s", s.Path)
	}
	var u model.User
	if err := json.Unmarshal(data, &u); err != nil || u.ID == 0 {
		_ = os.Remove(s.Path)
		return nil, nil
	}
	return &u, nil
}

func (s Store) Clear() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "error removing session file: %s", s.Path)
	}
	return nil
}
