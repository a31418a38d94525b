package db

import (
	"fmt"
	"log"

	"github.com/tracknest/tracker-go/internal/config"
	"github.com/tracknest/tracker-go/internal/domain/audit"
	"github.com/tracknest/tracker-go/internal/domain/identity"
	"github.com/tracknest/tracker-go/internal/domain/project"
	"github.com/tracknest/tracker-go/internal/domain/ticket"
	"github.com/tracknest/tracker-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Owners are provisioned lazily and user deletion orphans their
		// projects, so FK constraints on identity references must not be
		// enforced by the schema.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate applies the schema. Order matters: users before projects before
// tickets so relation constraints resolve.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&project.Project{},
		&ticket.Ticket{},
		&audit.AuditLog{},
		&identity.Event{},
	)
}

// InitWithGormDB swaps in an externally constructed connection (tests).
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
