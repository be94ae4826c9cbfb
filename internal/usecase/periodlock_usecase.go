package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/caixaflow/caixaflow/internal/domain"
)

// PeriodLockUseCase owns the process-wide closing watermark. Every ledger
// entry dated on or before the watermark is immutable. The storage row is the
// source of truth: changes are written through before the in-memory copy
// moves, and the copy is loaded once at boot.
type PeriodLockUseCase struct {
	settingsRepo SettingsRepository

	mu        sync.RWMutex
	watermark *time.Time
}

// NewPeriodLockUseCase creates a new PeriodLockUseCase.
func NewPeriodLockUseCase(settingsRepo SettingsRepository) *PeriodLockUseCase {
	return &PeriodLockUseCase{settingsRepo: settingsRepo}
}

// Load reads the persisted watermark. Call once at boot.
func (uc *PeriodLockUseCase) Load(ctx context.Context) error {
	date, err := uc.settingsRepo.GetClosingDate(ctx)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	uc.watermark = date
	uc.mu.Unlock()

	return nil
}

// Close sets the watermark. The whole business closes at once; there is no
// per-account watermark.
func (uc *PeriodLockUseCase) Close(ctx context.Context, date time.Time) error {
	if date.IsZero() {
		return domain.ErrClosingDateMissing
	}

	day := domain.DateOnly(date)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.settingsRepo.SetClosingDate(ctx, &day); err != nil {
		return err
	}

	uc.watermark = &day

	return nil
}

// Reopen clears the watermark unconditionally. Whether a confirmation step is
// required is the caller's policy.
func (uc *PeriodLockUseCase) Reopen(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.settingsRepo.SetClosingDate(ctx, nil); err != nil {
		return err
	}

	uc.watermark = nil

	return nil
}

// ClosingDate returns the current watermark, nil when the ledger is fully
// open.
func (uc *PeriodLockUseCase) ClosingDate() *time.Time {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.watermark == nil {
		return nil
	}

	d := *uc.watermark

	return &d
}

// IsLocked reports whether a date falls inside the closed period.
func (uc *PeriodLockUseCase) IsLocked(date time.Time) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.watermark == nil {
		return false
	}

	return !domain.DateOnly(date).After(*uc.watermark)
}

// CheckDate returns a PeriodClosedError when the date is locked.
func (uc *PeriodLockUseCase) CheckDate(date time.Time) error {
	if uc.IsLocked(date) {
		return domain.NewPeriodClosedError(date)
	}

	return nil
}
