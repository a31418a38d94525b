// Package testutils provisions throwaway infrastructure for integration
// tests.
package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SetupPostgres starts a disposable postgres container and returns its
// DSN plus a cleanup func. Set TEST_DB_DSN to target an external
// database instead (CI with a shared postgres service, for instance).
func SetupPostgres() (string, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		waitForDB(dsn)
		return dsn, func() {}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "tracker_test",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/tracker_test?sslmode=disable", host, port.Port())
	waitForDB(dsn)

	return dsn, func() {
		_ = pg.Terminate(ctx)
	}
}

// waitForDB pings until the server accepts connections; the container's
// log line can precede readiness of the final listening socket.
func waitForDB(dsn string) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	deadline := time.Now().Add(30 * time.Second)
	for {
		if err = db.Ping(); err == nil {
			return
		}
		if time.Now().After(deadline) {
			log.Fatalf("database not reachable: %v", err)
		}
		time.Sleep(500 * time.Millisecond)
	}
}
