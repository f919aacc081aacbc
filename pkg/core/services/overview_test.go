package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWeekOverview(t *testing.T) {
	b := newTestBoard()
	logger := zap.NewNop()
	ctx := context.Background()

	ev, err := AddEvent(ctx, b, logger, "2025-10-10", "Jumuah Appeal")
	require.NoError(t, err)
	_, err = AddVolunteer(ctx, b, logger, "2025-10-10", ev.ID, "Volunteers list", "Ali", "(312) 555-0199")
	require.NoError(t, err)

	overview := WeekOverview(ctx, b.Snapshot(), logger, testNow())

	assert.Equal(t, b.WeekStart(), overview.WeekStart)
	require.Len(t, overview.Days, 7)

	// Wednesday (the injected clock) is flagged as today
	assert.Equal(t, "2025-10-08", overview.Days[2].Key)
	assert.True(t, overview.Days[2].IsToday)
	assert.False(t, overview.Days[0].IsToday)

	friday := overview.Days[4]
	assert.Equal(t, "2025-10-10", friday.Key)
	require.Len(t, friday.Events, 1)

	evOverview := friday.Events[0]
	assert.Equal(t, "Jumuah Appeal", evOverview.Details)
	assert.True(t, evOverview.Locked)
	require.Len(t, evOverview.Roles, 2, "every defined role appears on every event")

	volunteersList := evOverview.Roles[0]
	assert.Equal(t, "Volunteers list", volunteersList.Role.Label)
	assert.Equal(t, 1, volunteersList.Coverage.Current)
	assert.Equal(t, 8, volunteersList.Coverage.Minimum)
	assert.False(t, volunteersList.Coverage.IsMet)
	require.Len(t, volunteersList.Volunteers, 1)
	assert.Equal(t, "Ali", volunteersList.Volunteers[0].Name)
	assert.Equal(t, "(312) 555-0199", volunteersList.Volunteers[0].Phone)

	setupCrew := evOverview.Roles[1]
	assert.Equal(t, 0, setupCrew.Coverage.Current)
	assert.Empty(t, setupCrew.Volunteers)
}

func TestWeekOverview_EmptyWeek(t *testing.T) {
	b := newTestBoard()

	overview := WeekOverview(context.Background(), b.Snapshot(), zap.NewNop(), testNow())

	require.Len(t, overview.Days, 7)
	for _, day := range overview.Days {
		assert.Empty(t, day.Events)
	}
}
