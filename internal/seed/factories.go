// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"evtele/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Role:     models.RoleUser,
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s <%s>", user.Username, user.Email)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildProgram constructs a guide entry for the given day and broadcast kind
// but does not persist it. Useful for batching.
func (f *Factory) BuildProgram(day time.Time, kind string, overrides ...func(*models.Program)) *models.Program {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	airDate := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	hour := 6 + r.Intn(18)
	minute := []int{0, 15, 30, 45}[r.Intn(4)]

	program := &models.Program{
		Title:       capitalize(gofakeit.BuzzWord()) + " " + gofakeit.HackerNoun(),
		Description: gofakeit.Paragraph(1, 2, 8, " "),
		AirDate:     &airDate,
		AirTime:     fmt.Sprintf("%02d:%02d", hour, minute),
		Duration:    fmt.Sprintf("%d min", []int{30, 45, 60, 90}[r.Intn(4)]),
		Category:    guideCategories[r.Intn(len(guideCategories))],
		Guests:      gofakeit.Name() + ", " + gofakeit.Name(),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/600/400", gofakeit.UUID()),
		Kind:        kind,
	}

	for _, override := range overrides {
		override(program)
	}
	return program
}

// CreateProgramsBatch persists multiple programs in a single DB call.
func (f *Factory) CreateProgramsBatch(programs []*models.Program) error {
	if f.opts.DryRun {
		for _, p := range programs {
			f.nextID++
			p.ID = f.nextID
		}
		log.Printf("[dry-run] CreateProgramsBatch: %d programs (no DB write)", len(programs))
		return nil
	}
	return f.db.Create(&programs).Error
}

// BuildReplay constructs an on-demand recording published within the last
// MaxDays days but does not persist it.
func (f *Factory) BuildReplay(overrides ...func(*models.Replay)) *models.Replay {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)

	replay := &models.Replay{
		Title:       capitalize(gofakeit.BuzzWord()) + " " + gofakeit.HackerNoun(),
		Description: gofakeit.Paragraph(1, 3, 8, " "),
		Thumbnail:   fmt.Sprintf("https://picsum.photos/seed/%s/600/400", gofakeit.UUID()),
		VideoURL:    fmt.Sprintf("https://cdn.example.com/replays/%s.m3u8", gofakeit.UUID()),
		DurationSec: []int{1800, 2700, 3600, 5400}[r.Intn(4)],
		PublishedAt: time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour),
		Views:       int64(r.Intn(5000)),
		Likes:       int64(r.Intn(500)),
		Category:    guideCategories[r.Intn(len(guideCategories))],
	}

	for _, override := range overrides {
		override(replay)
	}
	return replay
}

// CreateReplaysBatch persists multiple replays in a single DB call.
func (f *Factory) CreateReplaysBatch(replays []*models.Replay) error {
	if f.opts.DryRun {
		for _, rp := range replays {
			f.nextID++
			rp.ID = f.nextID
		}
		log.Printf("[dry-run] CreateReplaysBatch: %d replays (no DB write)", len(replays))
		return nil
	}
	return f.db.Create(&replays).Error
}

// CreateComment persists a comment from the given user on the given scope.
// The username is copied onto the row the way the posting endpoint does it.
func (f *Factory) CreateComment(user *models.User, scope string, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Scope:    scope,
		UserID:   user.ID,
		Username: user.Username,
		Body:     gofakeit.Sentence(8),
	}

	for _, override := range overrides {
		override(comment)
	}

	if f.opts.DryRun {
		f.nextID++
		comment.ID = f.nextID
		return comment, nil
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// EnsureCategory creates the named category if it does not exist yet.
func (f *Factory) EnsureCategory(name string) (*models.Category, error) {
	category := &models.Category{Name: name}

	if f.opts.DryRun {
		f.nextID++
		category.ID = f.nextID
		return category, nil
	}

	if err := f.db.Where(models.Category{Name: name}).FirstOrCreate(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// EnsureSettings creates the singleton settings row with plausible demo
// values when it does not exist yet.
func (f *Factory) EnsureSettings() (*models.SiteSettings, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	settings := &models.SiteSettings{
		ID:                models.SiteSettingsID,
		DefaultViews:      int64(1000 + r.Intn(9000)),
		DefaultLikes:      int64(100 + r.Intn(900)),
		DefaultRadioViews: int64(500 + r.Intn(4500)),
		DefaultRadioLikes: int64(50 + r.Intn(450)),
		TVStreamURL:       "https://stream.example.com/tv/index.m3u8",
		RadioStreamURL:    "https://stream.example.com/radio/index.m3u8",
	}

	if f.opts.DryRun {
		return settings, nil
	}

	if err := f.db.Where(models.SiteSettings{ID: models.SiteSettingsID}).
		Attrs(*settings).
		FirstOrCreate(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
