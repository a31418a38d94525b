package repository

import (
	"github.com/google/uuid"
	"github.com/tracknest/tracker-go/internal/domain/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepo interface {
	GetUserByID(id string) (user.User, error)
	GetUserByExternalID(externalID string) (user.User, error)
	UpsertByExternalID(ident user.Identity) (user.User, error)
	DeleteByExternalID(externalID string) (int64, error)
	ClearAssignments(userID string) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	return &DBUserRepo{db: tx}
}

func (r *DBUserRepo) GetUserByID(id string) (user.User, error) {
	var u user.User
	err := r.db.First(&u, "id = ?", id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByExternalID(externalID string) (user.User, error) {
	var u user.User
	err := r.db.First(&u, "external_id = ?", externalID).Error
	return u, err
}

// UpsertByExternalID inserts or refreshes the row keyed by the provider's
// user id and returns the current state.
func (r *DBUserRepo) UpsertByExternalID(ident user.Identity) (user.User, error) {
	u := user.User{
		ID:         uuid.NewString(),
		ExternalID: ident.ExternalID,
		Name:       ident.Name,
		Email:      ident.Email,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "updated_at"}),
	}).Create(&u).Error
	if err != nil {
		return user.User{}, err
	}
	return r.GetUserByExternalID(ident.ExternalID)
}

// DeleteByExternalID removes every matching row. Cardinality should be 0
// or 1 for a well-formed external id; either way the call is idempotent.
func (r *DBUserRepo) DeleteByExternalID(externalID string) (int64, error) {
	res := r.db.Where("external_id = ?", externalID).Delete(&user.User{})
	return res.RowsAffected, res.Error
}

// ClearAssignments nulls the assignee reference on tickets pointing at a
// user that is being removed.
func (r *DBUserRepo) ClearAssignments(userID string) error {
	return r.db.Table("tickets").Where("assignee_id = ?", userID).
		Update("assignee_id", nil).Error
}
