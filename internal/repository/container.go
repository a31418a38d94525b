package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User     UserRepo
	Project  ProjectRepo
	Ticket   TicketRepo
	Audit    AuditRepo
	Identity IdentityRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:     NewUserRepo(db),
		Project:  NewProjectRepo(db),
		Ticket:   NewTicketRepo(db),
		Audit:    NewAuditRepo(db),
		Identity: NewIdentityRepo(db),
		db:       db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:     r.User.WithTx(tx),
		Project:  r.Project.WithTx(tx),
		Ticket:   r.Ticket.WithTx(tx),
		Audit:    r.Audit.WithTx(tx),
		Identity: r.Identity.WithTx(tx),
		db:       tx,
	}
}

// ExecTx runs fn against transactional copies of every repo; the
// transaction commits when fn returns nil and rolls back otherwise.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// Ping verifies the underlying connection, for health checks.
func (r *Repos) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
