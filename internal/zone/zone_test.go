package zone

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTable(t *testing.T) *Table {
	t.Helper()
	table, err := New(Spec{Label: "EST", ID: "US/Eastern"}, Spec{Label: "PST", ID: "US/Pacific"})
	require.NoError(t, err)
	return table
}

func TestNew_DefaultZones_Success(t *testing.T) {
	table := defaultTable(t)

	assert.Equal(t, "EST", table.Source().Label)
	assert.Equal(t, "US/Eastern", table.Source().ID)
	assert.Equal(t, "US/Eastern", table.Source().Location.String())
	assert.Equal(t, "PST", table.Target().Label)
	assert.Equal(t, "US/Pacific", table.Target().Location.String())
	assert.Equal(t, []string{"EST", "PST"}, table.Labels())
}

func TestNew_UnknownZone_Error(t *testing.T) {
	_, err := New(Spec{Label: "EST", ID: "US/Eastern"}, Spec{Label: "XXX", ID: "Mars/Olympus_Mons"})
	require.Error(t, err)

	var unknown *UnknownZoneError
	require.True(t, errors.As(err, &unknown), "want *UnknownZoneError, got %T", err)
	assert.Equal(t, "XXX", unknown.Label)
	assert.Equal(t, "Mars/Olympus_Mons", unknown.ID)
	assert.Contains(t, err.Error(), "target zone")
}

func TestNew_EmptyIdentifier_Error(t *testing.T) {
	_, err := New(Spec{Label: "EST", ID: ""}, Spec{Label: "PST", ID: "US/Pacific"})

	var unknown *UnknownZoneError
	assert.ErrorAs(t, err, &unknown)
}

func TestNew_EmptyLabel_Error(t *testing.T) {
	_, err := New(Spec{Label: " ", ID: "US/Eastern"}, Spec{Label: "PST", ID: "US/Pacific"})
	assert.Error(t, err)
}

func TestNew_DuplicateLabels_Error(t *testing.T) {
	_, err := New(Spec{Label: "EST", ID: "US/Eastern"}, Spec{Label: "est", ID: "US/Pacific"})
	assert.Error(t, err)
}

func TestReversed_SwapsDirection(t *testing.T) {
	table := defaultTable(t)
	rev := table.Reversed()

	assert.Equal(t, "PST", rev.Source().Label)
	assert.Equal(t, "EST", rev.Target().Label)
	// original is untouched
	assert.Equal(t, "EST", table.Source().Label)
}
