// internal/inspection/session.go
package inspection

import (
	"context"
	"strings"

	"github.com/M00N69/supainspection/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserDirectory is the external user table. Lookups are case-insensitive;
// an absent user is (nil, nil), not an error.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Catalog is the external checkpoint table. Checklist names match
// case-insensitively.
type Catalog interface {
	FindByChecklist(ctx context.Context, name string) ([]models.Checkpoint, error)
	Checklists(ctx context.Context) ([]string, error)
}

// Store persists inspections. Get returns (nil, nil) for a missing row.
// UpdateResults writes results, progress and status together; partial-field
// updates are not part of the contract.
type Store interface {
	Create(ctx context.Context, insp *models.Inspection) error
	Get(ctx context.Context, id uint) (*models.Inspection, error)
	UpdateResults(ctx context.Context, id uint, results []models.CheckpointResult, progress float64, status string) error
}

// Session tracks who is logged in and which inspection is active across the
// interactions of one inspection walkthrough. All collaborators are owned
// references; there is no package-level state.
type Session struct {
	users   UserDirectory
	catalog Catalog
	store   Store

	user         *models.User
	inspectionID uint
}

func NewSession(users UserDirectory, catalog Catalog, store Store) *Session {
	return &Session{users: users, catalog: catalog, store: store}
}

// User returns the authenticated user, or nil.
func (s *Session) User() *models.User { return s.user }

// InspectionID returns the bound inspection id, zero when none is active.
func (s *Session) InspectionID() uint { return s.inspectionID }

// Bind attaches an already-authenticated user, e.g. one recovered from a
// session token on a later request.
func (s *Session) Bind(user *models.User) { s.user = user }

// BindInspection attaches an active inspection id recovered from transport
// state.
func (s *Session) BindInspection(id uint) { s.inspectionID = id }

// Authenticate looks the user up by email, case-insensitively, and binds it
// to the session. When the directory row carries a password hash the given
// password must match it; rows without a hash authenticate on email alone.
func (s *Session) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if user.Password != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
			return nil, ErrUnauthorized
		}
	}

	s.user = user
	return user, nil
}

// StartInspection snapshots the named checklist into a new in-progress
// inspection owned by the session user and binds its id. A checklist with no
// checkpoints is ErrNotFound and nothing is persisted.
func (s *Session) StartInspection(ctx context.Context, checklistName string) (*models.Inspection, error) {
	if s.user == nil {
		return nil, ErrUnauthorized
	}
	checklistName = strings.TrimSpace(checklistName)
	if checklistName == "" {
		return nil, ErrInvalidInput
	}

	checkpoints, err := s.catalog.FindByChecklist(ctx, checklistName)
	if err != nil {
		return nil, err
	}
	if len(checkpoints) == 0 {
		return nil, ErrNotFound
	}

	results := make([]models.CheckpointResult, 0, len(checkpoints))
	for _, cp := range checkpoints {
		results = append(results, models.CheckpointResult{
			CheckpointID: cp.ID,
			Zone:         cp.Zone,
			Points:       cp.Points,
			Status:       models.StatusUnevaluated,
		})
	}

	insp := &models.Inspection{
		UserID:   s.user.ID,
		Status:   models.InspectionInProgress,
		Progress: 0,
		Results:  results,
	}
	if err := s.store.Create(ctx, insp); err != nil {
		return nil, &PersistenceError{Op: "insert inspection", Err: err}
	}

	s.inspectionID = insp.ID
	return insp, nil
}

// LoadActiveInspection fetches the bound inspection from the store.
func (s *Session) LoadActiveInspection(ctx context.Context) (*models.Inspection, error) {
	if s.inspectionID == 0 {
		return nil, ErrNotFound
	}
	insp, err := s.store.Get(ctx, s.inspectionID)
	if err != nil {
		return nil, err
	}
	if insp == nil {
		return nil, ErrNotFound
	}
	if s.user != nil && insp.UserID != s.user.ID {
		return nil, ErrNotFound
	}
	return insp, nil
}

// SaveResults folds the submitted edits into the active inspection and
// persists results, progress and status in one update. On failure the
// stored row and the caller's edits are both left as they were, so the save
// can simply be retried. Concurrent saves on the same inspection are not
// synchronized; the last write wins.
func (s *Session) SaveResults(ctx context.Context, edits []Edit) (*models.Inspection, error) {
	insp, err := s.LoadActiveInspection(ctx)
	if err != nil {
		return nil, err
	}

	updated, progress, status := ApplyEdits(insp.Results, edits)
	if err := s.store.UpdateResults(ctx, insp.ID, updated, progress, status); err != nil {
		return nil, &PersistenceError{Op: "update inspection", Err: err}
	}

	insp.Results = updated
	insp.Progress = progress
	insp.Status = status
	return insp, nil
}
