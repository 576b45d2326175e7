package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	web "sideline/internal/adapters/http"
	"sideline/internal/adapters/storage"
	accountStore "sideline/internal/adapters/storage/account"
	attendanceStore "sideline/internal/adapters/storage/attendance"
	coachStore "sideline/internal/adapters/storage/coach"
	eventStore "sideline/internal/adapters/storage/event"
	groupStore "sideline/internal/adapters/storage/group"
	noteStore "sideline/internal/adapters/storage/note"
	playerStore "sideline/internal/adapters/storage/player"
	seasonStore "sideline/internal/adapters/storage/season"
	sessionStore "sideline/internal/adapters/storage/session"
	"sideline/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	dbPath := envOrDefault("SIDELINE_DB", "sideline.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Wrap the DB so slow queries get logged.
	timedDB := storage.NewTimedDB(db)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:    acctStore,
		SeasonStore:     seasonStore.NewSQLiteStore(timedDB),
		PlayerStore:     playerStore.NewSQLiteStore(timedDB),
		CoachStore:      coachStore.NewSQLiteStore(timedDB),
		GroupStore:      groupStore.NewSQLiteStore(timedDB),
		SessionStore:    sessionStore.NewSQLiteStore(timedDB),
		AttendanceStore: attendanceStore.NewSQLiteStore(timedDB),
		NoteStore:       noteStore.NewSQLiteStore(timedDB),
		EventStore:      eventStore.NewSQLiteStore(timedDB),
	}

	// Seed the first admin account when the accounts table is empty.
	adminEmail := envOrDefault("SIDELINE_ADMIN_EMAIL", "admin@sideline.local")
	adminPassword := envOrDefault("SIDELINE_ADMIN_PASSWORD", "change-me-before-prod")
	seedDeps := orchestrators.CreateAccountDeps{
		AccountStore: acctStore,
		GenerateID:   func() string { return uuid.New().String() },
		Now:          time.Now,
	}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), adminEmail, adminPassword, seedDeps); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	mux := web.NewMux(stores)

	addr := envOrDefault("SIDELINE_ADDR", ":8080")
	log.Printf("Sideline %s starting on %s (env=%s)", version, addr, envOrDefault("SIDELINE_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
