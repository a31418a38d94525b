package repository

import (
	"github.com/tracknest/tracker-go/internal/domain/identity"
	"gorm.io/gorm"
)

type IdentityRepo interface {
	RecordEvent(ev *identity.Event) error
	EventSeen(messageID string) (bool, error)
	WithTx(tx *gorm.DB) IdentityRepo
}

type DBIdentityRepo struct {
	db *gorm.DB
}

func NewIdentityRepo(db *gorm.DB) *DBIdentityRepo {
	return &DBIdentityRepo{db: db}
}

func (r *DBIdentityRepo) WithTx(tx *gorm.DB) IdentityRepo {
	return &DBIdentityRepo{db: tx}
}

func (r *DBIdentityRepo) RecordEvent(ev *identity.Event) error {
	return r.db.Create(ev).Error
}

func (r *DBIdentityRepo) EventSeen(messageID string) (bool, error) {
	var n int64
	err := r.db.Model(&identity.Event{}).Where("message_id = ?", messageID).Count(&n).Error
	return n > 0, err
}
