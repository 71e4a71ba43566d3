package notice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidRowLength(t *testing.T) {
	n := InvalidRowLength("test_invalid.tst", 2, 3, 2)

	assert.Equal(t, "E004", n.Code)
	assert.Equal(t, "Invalid row length", n.Title)
	assert.Equal(t, "test_invalid.tst", n.Filename)
	assert.Equal(t, "Invalid length for row:2 -- expected:3 actual:2", n.Description)
}

func TestCannotConstructDataProvider(t *testing.T) {
	n := CannotConstructDataProvider("test_empty.tst")

	assert.Equal(t, "E002", n.Code)
	assert.Equal(t, "Data provider error", n.Title)
	assert.Equal(t, "An error occurred while trying to access raw data for file: test_empty.tst", n.Description)
}

func TestMissingRequiredFile(t *testing.T) {
	n := MissingRequiredFile("agency.txt")

	assert.Equal(t, "E002", n.Code)
	assert.Equal(t, "Missing required file", n.Title)
	assert.Equal(t, "File agency.txt is required.", n.Description)
}

func TestConditionalFieldNotices(t *testing.T) {
	both := ConflictingFields("translations.txt", "record_id", "field_value", "")
	neither := MissingConditionalFields("translations.txt", "record_id", "field_value", "")

	assert.Equal(t, "record_id and field_value can not both be defined", both.Description)
	assert.Equal(t, "record_id and field_value can not both be undefined", neither.Description)
	assert.NotEqual(t, both.Code, neither.Code)
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		code string
		want Severity
	}{
		{"E004", SeverityError},
		{"W001", SeverityWarning},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, Notice{Code: tt.code}.Severity())
		})
	}
	assert.Equal(t, "WARNING", SeverityWarning.String())
}

func TestCollector_KeepsDiscoveryOrder(t *testing.T) {
	c := NewCollector()
	first := MissingRequiredFile("agency.txt")
	second := NonStandardFile("extra.txt")
	third := InvalidRowLength("stops.txt", 3, 4, 5)

	assert.Equal(t, first, c.Add(first))
	c.Add(second)
	c.Add(third)
	c.Add(third)

	got := c.Notices()
	require.Len(t, got, 4)
	assert.Equal(t, []Notice{first, second, third, third}, got)
	assert.Equal(t, 3, c.CountBySeverity()[SeverityError])
	assert.Equal(t, 1, c.CountBySeverity()[SeverityWarning])
	assert.True(t, c.HasErrors())
}

func TestCollector_NoticesIsACopy(t *testing.T) {
	c := NewCollector()
	c.Add(NonStandardFile("a.txt"))

	got := c.Notices()
	got[0].Code = "X"

	assert.Equal(t, "W001", c.Notices()[0].Code)
	assert.False(t, c.HasErrors())
}

func TestCollector_ZeroNoticePanics(t *testing.T) {
	c := NewCollector()
	assert.Panics(t, func() { c.Add(Notice{}) })
	assert.Equal(t, 0, c.Len())
}

func TestAtRow(t *testing.T) {
	n := CannotParseInteger("stops.txt", "location_type", "S1", "abc")
	got := n.AtRow(7)

	assert.Equal(t, 7, got.Row)
	assert.Equal(t, 0, n.Row, "original notice is unchanged")
	assert.Equal(t, `Invalid value: "abc" for field: location_type in file: stops.txt for entity with id: S1`, got.Description)
}
