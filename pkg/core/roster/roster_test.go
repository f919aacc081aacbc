package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hudacentre/fundraiser-rota/pkg/core/model"
)

func TestIsDuplicate(t *testing.T) {
	existing := []model.VolunteerEntry{
		{ID: "e1", Name: "Jane Doe", Phone: "5551234567"},
		{ID: "e2", Name: "Ali Hassan", Phone: "3125550199"},
	}

	tests := []struct {
		name      string
		candidate string
		phone     string
		expected  bool
	}{
		{"exact match", "Jane Doe", "5551234567", true},
		{"case-insensitive name with masked phone", "jane doe", "(555) 123-4567", true},
		{"name with surrounding whitespace", "  JANE DOE  ", "555-123-4567", true},
		{"same name different phone", "Jane Doe", "5550000000", false},
		{"same phone different name", "Janet Doe", "5551234567", false},
		{"unknown volunteer", "Omar Khan", "7735550123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDuplicate(existing, tt.candidate, tt.phone))
		})
	}
}

func TestIsDuplicate_EmptyRoster(t *testing.T) {
	assert.False(t, IsDuplicate(nil, "Jane Doe", "5551234567"))
}

func TestFindInOtherDays(t *testing.T) {
	days := map[string]*model.DayState{
		"2025-10-06": {
			Events: []*model.Event{
				{
					ID: "ev1",
					Roles: map[string][]model.VolunteerEntry{
						"r1": {{ID: "e1", Name: "Jane Doe", Phone: "5551234567"}},
					},
				},
			},
		},
		"2025-10-07": {
			Events: []*model.Event{
				{
					ID: "ev2",
					Roles: map[string][]model.VolunteerEntry{
						"r1": {{ID: "e2", Name: "jane doe", Phone: "5551234567"}},
					},
				},
			},
		},
	}

	matches := FindInOtherDays(days, "2025-10-06", "Jane Doe", "(555) 123-4567")

	require.Len(t, matches, 1)
	assert.Equal(t, "2025-10-07", matches[0].DayKey)
	assert.Equal(t, "ev2", matches[0].EventID)
	assert.Equal(t, "r1", matches[0].RoleID)
	assert.Equal(t, "e2", matches[0].Entry.ID)
}

func TestCoverage(t *testing.T) {
	role := model.RoleDefinition{ID: "r1", Label: "Volunteers list", MinVolunteers: 8}
	event := &model.Event{
		ID: "ev1",
		Roles: map[string][]model.VolunteerEntry{
			"r1": {
				{ID: "e1", Name: "A", Phone: "1111111111"},
				{ID: "e2", Name: "B", Phone: "2222222222"},
				{ID: "e3", Name: "C", Phone: "3333333333"},
				{ID: "e4", Name: "D", Phone: "4444444444"},
				{ID: "e5", Name: "E", Phone: "5555555555"},
			},
		},
	}

	cov := Coverage(event, role)
	assert.Equal(t, 5, cov.Current)
	assert.Equal(t, 8, cov.Minimum)
	assert.False(t, cov.IsMet)

	// Fill up to the minimum
	for i := 5; i < 8; i++ {
		event.Roles["r1"] = append(event.Roles["r1"], model.VolunteerEntry{ID: string(rune('a' + i))})
	}
	cov = Coverage(event, role)
	assert.Equal(t, 8, cov.Current)
	assert.True(t, cov.IsMet)
}

func TestCoverage_NoSignups(t *testing.T) {
	role := model.RoleDefinition{ID: "r1", Label: "Greeters", MinVolunteers: 0}
	event := &model.Event{ID: "ev1"}

	cov := Coverage(event, role)
	assert.Equal(t, 0, cov.Current)
	assert.Equal(t, 0, cov.Minimum)
	assert.True(t, cov.IsMet, "zero-minimum roles are always covered")
}

func TestNewEntry(t *testing.T) {
	entry, err := NewEntry(nil, "  Ali  ", "(312) 555-0199")

	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Ali", entry.Name)
	assert.Equal(t, "3125550199", entry.Phone)
}

func TestNewEntry_Rejections(t *testing.T) {
	existing := []model.VolunteerEntry{
		{ID: "e1", Name: "Jane Doe", Phone: "5551234567"},
	}

	tests := []struct {
		name        string
		volunteer   string
		phone       string
		errContains string
	}{
		{"empty name", "", "3125550199", "name is required"},
		{"whitespace-only name", "   ", "3125550199", "name is required"},
		{"short phone", "Ali", "312555", "exactly 10 digits"},
		{"long phone", "Ali", "31255501991", "exactly 10 digits"},
		{"duplicate", "jane doe", "(555) 123-4567", "already signed up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEntry(existing, tt.volunteer, tt.phone)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestNewEntry_UniqueIDs(t *testing.T) {
	first, err := NewEntry(nil, "Ali", "3125550199")
	require.NoError(t, err)
	second, err := NewEntry(nil, "Omar", "7735550123")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestRemove(t *testing.T) {
	entries := []model.VolunteerEntry{
		{ID: "e1", Name: "A"},
		{ID: "e2", Name: "B"},
		{ID: "e3", Name: "C"},
	}

	result, removed := Remove(entries, "e2")
	assert.True(t, removed)
	require.Len(t, result, 2)
	assert.Equal(t, "e1", result[0].ID)
	assert.Equal(t, "e3", result[1].ID)
}

func TestRemove_AbsentIDIsNoOp(t *testing.T) {
	entries := []model.VolunteerEntry{{ID: "e1", Name: "A"}}

	once, removed := Remove(entries, "missing")
	assert.False(t, removed)
	assert.Equal(t, entries, once)

	// Removing twice is equivalent to removing once
	first, _ := Remove(entries, "e1")
	second, removed := Remove(first, "e1")
	assert.False(t, removed)
	assert.Equal(t, first, second)
}
