package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByID(t *testing.T) {
	snapshot := &Snapshot{
		Eligible: []Validator{
			ratedValidator(7, 0.03),
			ratedValidator(23, 0.01),
		},
		Ineligible: []Validator{
			{ID: 12, Name: "Borealis Node"},
			{ID: 19, Name: UnknownName},
		},
	}

	tests := []struct {
		name        string
		id          int
		expectedErr error
	}{
		{name: "found in eligible partition", id: 7},
		{name: "found in ineligible partition", id: 12},
		{name: "last eligible entry", id: 23},
		{name: "unknown ID", id: 999, expectedErr: ErrNotFound},
		{name: "zero ID", id: 0, expectedErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FindByID(snapshot, tt.id)
			if tt.expectedErr != nil {
				assert.Nil(t, v)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, v)
			assert.Equal(t, tt.id, v.ID)
		})
	}
}

func TestFindByID_EmptySnapshot(t *testing.T) {
	v, err := FindByID(&Snapshot{}, 7)

	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrNotFound)
}
