package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	wizardFSM "github.com/m04kA/SMC-BookingWizard/internal/wizard"
)

type entry struct {
	wizard     *wizardFSM.Wizard
	lastAccess time.Time
}

// Repository in-memory хранилище сессий мастера
// Данные живут только в памяти процесса и теряются при перезапуске
type Repository struct {
	mu          sync.RWMutex
	items       map[string]*entry
	maxSessions int
	now         func() time.Time
}

// NewRepository создает хранилище; maxSessions = 0 означает без ограничения
func NewRepository(maxSessions int) *Repository {
	return &Repository{
		items:       make(map[string]*entry),
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

// Create сохраняет новую сессию и возвращает её ID
func (r *Repository) Create(ctx context.Context, w *wizardFSM.Wizard) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxSessions > 0 && len(r.items) >= r.maxSessions {
		return "", ErrTooManyWizards
	}

	id := uuid.NewString()
	r.items[id] = &entry{wizard: w, lastAccess: r.now()}
	return id, nil
}

// GetByID возвращает сессию и обновляет время последнего обращения
func (r *Repository) GetByID(ctx context.Context, id string) (*wizardFSM.Wizard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return nil, ErrWizardNotFound
	}
	e.lastAccess = r.now()
	return e.wizard, nil
}

// Delete закрывает и удаляет сессию
// Сессию с незавершённым подтверждением удалить нельзя: ErrWizardBusy
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return ErrWizardNotFound
	}
	if err := e.wizard.Close(); err != nil {
		return ErrWizardBusy
	}
	delete(r.items, id)
	return nil
}

// DeleteIdle удаляет сессии, к которым не обращались с момента before
// Сессии с незавершённым подтверждением не удаляются
func (r *Repository) DeleteIdle(ctx context.Context, before time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.items {
		if !e.lastAccess.Before(before) {
			continue
		}
		if e.wizard.Close() != nil {
			continue
		}
		delete(r.items, id)
		removed++
	}
	return removed, nil
}

// Count возвращает количество активных сессий
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
