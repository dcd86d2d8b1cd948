package validator

import (
	"errors"
)

// ErrNotFound is returned when no validator matches the requested ID. It is
// distinct from upstream failures: the snapshot was obtained, the ID simply
// is not in it.
var ErrNotFound = errors.New("validator not found")

// FindByID searches both partitions of a snapshot for the given validator ID.
func FindByID(snapshot *Snapshot, id int) (*Validator, error) {
	for i := range snapshot.Eligible {
		if snapshot.Eligible[i].ID == id {
			return &snapshot.Eligible[i], nil
		}
	}
	for i := range snapshot.Ineligible {
		if snapshot.Ineligible[i].ID == id {
			return &snapshot.Ineligible[i], nil
		}
	}
	return nil, ErrNotFound
}
