package service

import (
	"context"
	"strings"
	"time"

	"evtele/internal/models"
	"evtele/internal/observability"
	"evtele/internal/repository"
)

const (
	defaultReplayPageSize = 20
	latestReplayLimit     = 5
	relatedReplayLimit    = 4
)

type ReplayService struct {
	replayRepo repository.ReplayRepository
}

type ReplayInput struct {
	Title       string
	Description string
	Thumbnail   string
	VideoURL    string
	DurationSec int
	PublishedAt time.Time
	Category    string
}

func NewReplayService(replayRepo repository.ReplayRepository) *ReplayService {
	return &ReplayService{replayRepo: replayRepo}
}

// View returns a replay for its detail page and counts the visit. The view
// counter is a vanity metric: if the increment fails the visitor still gets
// the replay, and the failure only goes to the log.
func (s *ReplayService) View(ctx context.Context, id uint) (*models.Replay, error) {
	replay, err := s.replayRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.replayRepo.IncrementViews(ctx, id); err != nil {
		observability.LogAsyncOperationError(ctx, "replay_view_increment", err, map[string]interface{}{
			"replay_id": id,
		})
	} else {
		observability.RecordCounterIncrement("replay", "views")
		replay.Views++
	}

	return replay, nil
}

// Like counts one like. There is no per-user dedup; every press counts.
func (s *ReplayService) Like(ctx context.Context, id uint) error {
	if err := s.replayRepo.IncrementLikes(ctx, id); err != nil {
		return err
	}
	observability.RecordCounterIncrement("replay", "likes")
	return nil
}

func (s *ReplayService) Get(ctx context.Context, id uint) (*models.Replay, error) {
	return s.replayRepo.GetByID(ctx, id)
}

func (s *ReplayService) List(ctx context.Context, category string, limit, offset int) ([]models.Replay, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultReplayPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.replayRepo.List(ctx, category, limit, offset)
}

func (s *ReplayService) Latest(ctx context.Context) ([]models.Replay, error) {
	return s.replayRepo.Latest(ctx, latestReplayLimit)
}

// Related returns other replays in the same category, newest first.
func (s *ReplayService) Related(ctx context.Context, id uint) ([]models.Replay, error) {
	replay, err := s.replayRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if replay.Category == "" {
		return []models.Replay{}, nil
	}
	return s.replayRepo.ListRelated(ctx, replay.Category, id, relatedReplayLimit)
}

func (s *ReplayService) Create(ctx context.Context, in ReplayInput) (*models.Replay, error) {
	replay, err := replayFromInput(in)
	if err != nil {
		return nil, err
	}
	if err := s.replayRepo.Create(ctx, replay); err != nil {
		return nil, err
	}
	return replay, nil
}

func (s *ReplayService) Update(ctx context.Context, id uint, in ReplayInput) (*models.Replay, error) {
	existing, err := s.replayRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := replayFromInput(in)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	// Counters are only ever mutated through atomic increments.
	updated.Views = existing.Views
	updated.Likes = existing.Likes

	if err := s.replayRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ReplayService) Delete(ctx context.Context, id uint) error {
	return s.replayRepo.Delete(ctx, id)
}

func replayFromInput(in ReplayInput) (*models.Replay, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.VideoURL == "" {
		return nil, models.NewValidationError("Video URL is required")
	}
	if in.DurationSec < 0 {
		return nil, models.NewValidationError("Duration cannot be negative")
	}

	publishedAt := in.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now()
	}

	return &models.Replay{
		Title:       title,
		Description: in.Description,
		Thumbnail:   in.Thumbnail,
		VideoURL:    in.VideoURL,
		DurationSec: in.DurationSec,
		PublishedAt: publishedAt,
		Category:    strings.TrimSpace(in.Category),
	}, nil
}
