package seed

import (
	"regexp"
	"testing"
	"time"

	"evtele/internal/models"
)

var airTimeFormat = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func TestBuildProgram_FieldsAndAirTime(t *testing.T) {
	f := NewFactory(nil, Options{DryRun: true})
	day := time.Now().AddDate(0, 0, 2)

	p := f.BuildProgram(day, models.KindRadio)
	if p.Kind != models.KindRadio {
		t.Fatalf("unexpected kind: %s", p.Kind)
	}
	if !airTimeFormat.MatchString(p.AirTime) {
		t.Fatalf("air time not HH:MM: %q", p.AirTime)
	}
	if p.AirDate == nil {
		t.Fatal("expected air date to be set")
	}
	if h, m, s := p.AirDate.Clock(); h != 0 || m != 0 || s != 0 {
		t.Fatalf("air date should carry the day only, got %v", p.AirDate)
	}
	if p.Title == "" || p.ImageURL == "" {
		t.Fatalf("incomplete program: %+v", p)
	}
}

func TestBuildReplay_PublishedWithinWindow(t *testing.T) {
	opts := Options{DryRun: true, MaxDays: 30}
	f := NewFactory(nil, opts)

	r := f.BuildReplay()
	if time.Since(r.PublishedAt) > (time.Duration(opts.MaxDays)+1)*24*time.Hour {
		t.Fatalf("published_at too old: %v", r.PublishedAt)
	}
	if r.DurationSec <= 0 {
		t.Fatalf("expected a positive duration, got %d", r.DurationSec)
	}
	if r.VideoURL == "" || r.Thumbnail == "" {
		t.Fatalf("incomplete replay: %+v", r)
	}
}

func TestCreateComment_CopiesUsername(t *testing.T) {
	f := NewFactory(nil, Options{DryRun: true})

	user := &models.User{ID: 12, Username: "host"}
	c, err := f.CreateComment(user, models.ScopeLiveTV)
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if c.Username != "host" || c.UserID != 12 {
		t.Fatalf("author not copied onto comment: %+v", c)
	}
	if c.Scope != models.ScopeLiveTV {
		t.Fatalf("unexpected scope: %s", c.Scope)
	}
}

func TestSeed_DryRunNeedsNoDatabase(t *testing.T) {
	opts := Options{
		NumUsers:       5,
		NumReplays:     4,
		GuideDays:      2,
		ProgramsPerDay: 3,
		NumComments:    6,
		DryRun:         true,
		SkipBcrypt:     true,
	}
	if err := Seed(nil, opts); err != nil {
		t.Fatalf("Seed dry run: %v", err)
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"", ""},
		{"signal", "Signal"},
		{"Signal", "Signal"},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.out {
			t.Fatalf("capitalize(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}
