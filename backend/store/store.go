// Package store provides the string-keyed persistence layer the session
// manager writes through. The durable layout is three well-known keys: an
// initialization flag, the serialized collection of registered users and the
// currently active session.
package store

// Well-known keys.
const (
	KeyInitialized = "placement_prep_db_initialized"
	KeyUsers       = "placement_prep_users"
	KeySession     = "placement_prep_user"
)

// Store is a synchronous string-keyed store. Get reports presence via its
// second return value; Delete of a missing key is not an error.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Initialize seeds the layout on first use: an empty user collection and the
// initialization flag. Subsequent calls are no-ops.
func Initialize(s Store) error {
	_, ok, err := s.Get(KeyInitialized)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	if _, ok, err = s.Get(KeyUsers); err != nil {
		return err
	} else if !ok {
		if err := s.Set(KeyUsers, "[]"); err != nil {
			return err
		}
	}
	return s.Set(KeyInitialized, "true")
}
