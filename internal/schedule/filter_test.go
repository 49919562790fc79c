package schedule

import (
	"testing"
	"time"

	"evtele/internal/models"

	"github.com/stretchr/testify/assert"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func program(title, airTime string, date *time.Time, kind, category string) models.Program {
	return models.Program{
		Title:    title,
		AirDate:  date,
		AirTime:  airTime,
		Kind:     kind,
		Category: category,
	}
}

func titles(programs []models.Program) []string {
	out := make([]string, 0, len(programs))
	for _, p := range programs {
		out = append(out, p.Title)
	}
	return out
}

func TestFilter_TodayDropsStartedPrograms(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)
	today := datePtr(2026, time.March, 10)

	programs := []models.Program{
		program("Morning Show", "08:00", today, "tv", "Talk"),
		program("Lunch News", "12:00", today, "tv", "News"),
		program("Afternoon Concert", "14:30", today, "tv", "Music"),
		program("Evening News", "20:00", today, "tv", "News"),
	}

	got := Filter(programs, now, "tv", CategoryAll, now)

	assert.Equal(t, []string{"Afternoon Concert", "Evening News"}, titles(got),
		"entries before the current wall clock are dropped, an entry starting exactly now is kept")
}

func TestFilter_FutureDayKeepsFullDaySorted(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 23, 0, 0, 0, time.UTC)
	tomorrow := datePtr(2026, time.March, 11)

	programs := []models.Program{
		program("Late Movie", "22:15", tomorrow, "tv", "Cinema"),
		program("Breakfast Club", "07:45", tomorrow, "tv", "Talk"),
		program("Midday Update", "12:00", tomorrow, "tv", "News"),
	}

	got := Filter(programs, *tomorrow, "tv", CategoryAll, now)

	assert.Equal(t, []string{"Breakfast Club", "Midday Update", "Late Movie"}, titles(got))
}

func TestFilter_PastDayIsAlwaysEmpty(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	yesterday := datePtr(2026, time.March, 9)

	programs := []models.Program{
		program("Old Show", "10:00", yesterday, "tv", "Talk"),
		program("Old Concert", "21:00", yesterday, "tv", "Music"),
	}

	got := Filter(programs, *yesterday, "tv", CategoryAll, now)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_KindAndCategory(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 6, 0, 0, 0, time.UTC)
	today := datePtr(2026, time.March, 10)

	programs := []models.Program{
		program("TV News", "08:00", today, "tv", "News"),
		program("Radio News", "08:00", today, "radio", "News"),
		program("TV Music", "09:00", today, "tv", "Music"),
	}

	tvNews := Filter(programs, now, "tv", "News", now)
	assert.Equal(t, []string{"TV News"}, titles(tvNews))

	radioAll := Filter(programs, now, "radio", CategoryAll, now)
	assert.Equal(t, []string{"Radio News"}, titles(radioAll))

	tvAll := Filter(programs, now, "tv", CategoryAll, now)
	assert.Equal(t, []string{"TV News", "TV Music"}, titles(tvAll))
}

func TestFilter_ExcludesProgramsWithoutAirDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 6, 0, 0, 0, time.UTC)
	today := datePtr(2026, time.March, 10)

	programs := []models.Program{
		program("Scheduled", "10:00", today, "tv", "Talk"),
		program("Unscheduled", "10:00", nil, "tv", "Talk"),
	}

	got := Filter(programs, now, "tv", CategoryAll, now)

	assert.Equal(t, []string{"Scheduled"}, titles(got))
}

func TestFilter_MidnightRollover(t *testing.T) {
	t.Parallel()

	// One minute before midnight: nearly everything today has started.
	now := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)
	today := datePtr(2026, time.March, 10)
	tomorrow := datePtr(2026, time.March, 11)

	programs := []models.Program{
		program("Nightcap", "23:59", today, "tv", "Talk"),
		program("Earlier", "23:00", today, "tv", "Talk"),
		program("First Tomorrow", "00:00", tomorrow, "tv", "Talk"),
	}

	gotToday := Filter(programs, now, "tv", CategoryAll, now)
	assert.Equal(t, []string{"Nightcap"}, titles(gotToday))

	gotTomorrow := Filter(programs, *tomorrow, "tv", CategoryAll, now)
	assert.Equal(t, []string{"First Tomorrow"}, titles(gotTomorrow))
}
