// Package service implements the application's business logic layer.
package service

import (
	"context"
	"strconv"
	"strings"

	"evtele/internal/models"
	"evtele/internal/observability"
	"evtele/internal/repository"
	"evtele/internal/validation"
)

// recentCommentLimit is how many comments a scope feed returns.
const recentCommentLimit = 20

const maxCommentLen = 1000

type CommentService struct {
	commentRepo repository.CommentRepository
	programRepo repository.ProgramRepository
}

type PostCommentInput struct {
	Scope    string
	UserID   uint
	Username string
	Body     string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	programRepo repository.ProgramRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		programRepo: programRepo,
	}
}

// PostComment appends a comment to a scope. The body is trimmed first;
// whitespace-only submissions are rejected regardless of what the client
// claims to have validated.
func (s *CommentService) PostComment(ctx context.Context, in PostCommentInput) (*models.Comment, error) {
	if err := validation.ValidateCommentScope(in.Scope); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	body := strings.TrimSpace(in.Body)
	if body == "" {
		return nil, models.NewValidationError("Comment text is required")
	}
	if len(body) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 1000 characters)")
	}

	// A numeric scope must point at a real program.
	if id, err := strconv.ParseUint(in.Scope, 10, 32); err == nil {
		if _, err := s.programRepo.GetByID(ctx, uint(id)); err != nil {
			return nil, err
		}
	}

	comment := &models.Comment{
		Scope:    in.Scope,
		UserID:   in.UserID,
		Username: in.Username,
		Body:     body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	observability.RecordComment(scopeKind(in.Scope))
	return comment, nil
}

// ListRecent returns the newest comments for a scope, most recent first.
func (s *CommentService) ListRecent(ctx context.Context, scope string) ([]models.Comment, error) {
	if err := validation.ValidateCommentScope(scope); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return s.commentRepo.ListByScope(ctx, scope, recentCommentLimit)
}

func scopeKind(scope string) string {
	switch scope {
	case models.ScopeLiveTV, models.ScopeLiveRadio:
		return scope
	}
	return "program"
}
