package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"evtele/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers       int
	NumReplays     int
	GuideDays      int // days of schedule to generate, centered on today
	ProgramsPerDay int
	NumComments    int
	MaxDays        int // how far back replay publish dates may reach
	ShouldClean    bool
	DryRun         bool
	SkipBcrypt     bool
}

// guideCategories are the filter labels the demo schedule draws from.
var guideCategories = []string{
	"News", "Culture", "Music", "Sport", "Documentary", "Talk",
}

// Seed populates the database with demo data for local development.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users, %d guide days and %d replays...",
		opts.NumUsers, opts.GuideDays, opts.NumReplays)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	f := NewFactory(db, opts)

	users, err := createUsers(f, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	for _, name := range guideCategories {
		if _, err := f.EnsureCategory(name); err != nil {
			return fmt.Errorf("failed to create category %q: %w", name, err)
		}
	}
	log.Printf("✓ %d categories available", len(guideCategories))

	programs, err := createSchedule(f, opts)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	log.Printf("✓ %d guide entries created", len(programs))

	replays, err := createReplays(f, opts.NumReplays)
	if err != nil {
		return fmt.Errorf("failed to create replays: %w", err)
	}
	log.Printf("✓ %d replays created", len(replays))

	if err := createComments(f, users, programs, opts.NumComments); err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", opts.NumComments)

	if _, err := f.EnsureSettings(); err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}
	log.Println("✓ site settings row in place")

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comments, replays, programs, categories, site_settings, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(f *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	// Always include some specific users for consistency if cleaning
	if count >= 3 {
		baseUsers := []string{"host", "producer", "test"}
		for _, name := range baseUsers {
			name := name
			user, err := f.CreateUser(func(u *models.User) {
				u.Username = name
				u.Email = fmt.Sprintf("%s@example.com", name)
			})
			if err == nil {
				users = append(users, user)
			}
		}
	}

	for i := len(users); i < count; i++ {
		user, err := f.CreateUser()
		if err != nil {
			log.Printf("Failed to create user #%d: %v", i, err)
			continue
		}
		users = append(users, user)

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

// createSchedule generates GuideDays days of programming around today so
// both past and future guide queries return something.
func createSchedule(f *Factory, opts Options) ([]*models.Program, error) {
	days := opts.GuideDays
	if days <= 0 {
		days = 7
	}
	perDay := opts.ProgramsPerDay
	if perDay <= 0 {
		perDay = 8
	}

	programs := make([]*models.Program, 0, days*perDay)
	start := time.Now().AddDate(0, 0, -days/2)

	for d := 0; d < days; d++ {
		day := start.AddDate(0, 0, d)
		for i := 0; i < perDay; i++ {
			kind := models.KindTV
			if i%3 == 2 {
				kind = models.KindRadio
			}
			programs = append(programs, f.BuildProgram(day, kind))
		}
	}

	if err := f.CreateProgramsBatch(programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func createReplays(f *Factory, count int) ([]*models.Replay, error) {
	replays := make([]*models.Replay, 0, count)
	for i := 0; i < count; i++ {
		replays = append(replays, f.BuildReplay())
	}
	if len(replays) == 0 {
		return replays, nil
	}
	if err := f.CreateReplaysBatch(replays); err != nil {
		return nil, err
	}
	return replays, nil
}

// createComments spreads comments across the live channels and a handful of
// seeded programs.
func createComments(f *Factory, users []*models.User, programs []*models.Program, count int) error {
	if len(users) == 0 || count <= 0 {
		return nil
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < count; i++ {
		user := users[r.Intn(len(users))]

		scope := models.ScopeLiveTV
		switch {
		case i%3 == 1:
			scope = models.ScopeLiveRadio
		case i%3 == 2 && len(programs) > 0:
			scope = fmt.Sprintf("%d", programs[r.Intn(len(programs))].ID)
		}

		if _, err := f.CreateComment(user, scope); err != nil {
			return err
		}
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
