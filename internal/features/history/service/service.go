package service

import (
	"context"
	"fmt"

	"ongkir-api/internal/core/logger"
	"ongkir-api/internal/features/history/domain"
	"ongkir-api/internal/features/history/ports"
	rates "ongkir-api/internal/features/rates/domain"

	"go.uber.org/zap"
)

// HistoryService handles journal reads and writes for the calculator.
type HistoryService struct {
	repo ports.HistoryRepository
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(repo ports.HistoryRepository) *HistoryService {
	return &HistoryService{
		repo: repo,
	}
}

// Record appends a completed calculation to the user's journal. It
// satisfies the rate feature's HistoryRecorder port.
func (s *HistoryService) Record(ctx context.Context, userID string, calc rates.ShippingCalculation) error {
	if _, err := s.repo.Append(ctx, userID, calc); err != nil {
		return fmt.Errorf("service: failed to append calculation: %w", err)
	}
	return nil
}

// List returns the user's journal. Read failures degrade to an empty
// journal so the caller can always render an empty state.
func (s *HistoryService) List(ctx context.Context, userID string) domain.Journal {
	journal, err := s.repo.List(ctx, userID)
	if err != nil {
		logger.Get().Warn("Failed to read history journal",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return domain.Journal{}
	}
	if journal == nil {
		return domain.Journal{}
	}
	return journal
}

// Clear empties the user's journal.
func (s *HistoryService) Clear(ctx context.Context, userID string) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return fmt.Errorf("service: failed to clear history: %w", err)
	}
	return nil
}
