package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/bralash/rants-api/internal/errors"
	"github.com/bralash/rants-api/internal/model"
	"github.com/bralash/rants-api/internal/repository"
)

// ConfessionService exposes confession operations. Anyone may submit; only
// admins reach the toggle and delete paths (enforced at the route level).
type ConfessionService interface {
	List(ctx context.Context, page, perPage int, status string) ([]model.Confession, int64, error)
	Get(ctx context.Context, id uint) (*model.Confession, error)
	Create(ctx context.Context, message, category, emotion string) (*model.Confession, error)
	ToggleApproval(ctx context.Context, id uint) (*model.Confession, error)
	Delete(ctx context.Context, id uint) error
}

type confessionService struct {
	repo repository.ConfessionRepository
}

// NewConfessionService creates a new confession service.
func NewConfessionService(repo repository.ConfessionRepository) ConfessionService {
	return &confessionService{repo: repo}
}

// List paginates confessions. status may be "", "approved", or "pending";
// anything else is a validation error.
func (s *confessionService) List(ctx context.Context, page, perPage int, status string) ([]model.Confession, int64, error) {
	var approved *bool
	switch status {
	case "":
	case "approved":
		v := true
		approved = &v
	case "pending":
		v := false
		approved = &v
	default:
		return nil, 0, apperrors.NewValidationError(
			`invalid status parameter, use "approved" or "pending"`,
			map[string]string{"status": "must be approved or pending"},
		)
	}
	return s.repo.List(ctx, page, perPage, approved)
}

func (s *confessionService) Get(ctx context.Context, id uint) (*model.Confession, error) {
	confession, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return confession, nil
}

func (s *confessionService) Create(ctx context.Context, message, category, emotion string) (*model.Confession, error) {
	confession := &model.Confession{
		Message:  message,
		Category: category,
		Emotion:  emotion,
	}
	if err := s.repo.Create(ctx, confession); err != nil {
		return nil, err
	}
	return confession, nil
}

// ToggleApproval flips the approval flag: pending becomes approved, approved
// reverts to pending. The flip is the whole state machine.
func (s *confessionService) ToggleApproval(ctx context.Context, id uint) (*model.Confession, error) {
	confession, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	confession.IsApproved = !confession.IsApproved
	if err := s.repo.Update(ctx, confession); err != nil {
		return nil, err
	}
	return confession, nil
}

func (s *confessionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
