package application

import (
	"errors"

	"github.com/tracknest/tracker-go/internal/domain/user"
	"github.com/tracknest/tracker-go/internal/repository"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) FindByExternalID(externalID string) (user.User, error) {
	u, err := s.Repos.User.GetUserByExternalID(externalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// SyncUpsert applies a user.created/user.updated event: the local row is
// created or refreshed, keyed by the provider's id.
func (s *UserService) SyncUpsert(ident user.Identity) (user.User, error) {
	return s.Repos.User.UpsertByExternalID(ident)
}

// SyncDelete applies a user.deleted event. Owned projects and tickets are
// kept (orphaned); ticket assignments pointing at the removed row are
// cleared first so no ticket references a missing user. Idempotent.
func (s *UserService) SyncDelete(externalID string) (int64, error) {
	var removed int64
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		u, err := tx.User.GetUserByExternalID(externalID)
		if err == nil {
			if err := tx.User.ClearAssignments(u.ID); err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		removed, err = tx.User.DeleteByExternalID(externalID)
		return err
	})
	return removed, err
}
