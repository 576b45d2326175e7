package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"sideline/internal/adapters/http/middleware"
	accountStore "sideline/internal/adapters/storage/account"
	attendanceStore "sideline/internal/adapters/storage/attendance"
	coachStore "sideline/internal/adapters/storage/coach"
	eventStore "sideline/internal/adapters/storage/event"
	groupStore "sideline/internal/adapters/storage/group"
	noteStore "sideline/internal/adapters/storage/note"
	playerStore "sideline/internal/adapters/storage/player"
	seasonStore "sideline/internal/adapters/storage/season"
	sessionStore "sideline/internal/adapters/storage/session"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore    accountStore.Store
	SeasonStore     seasonStore.Store
	PlayerStore     playerStore.Store
	CoachStore      coachStore.Store
	GroupStore      groupStore.Store
	SessionStore    sessionStore.Store
	AttendanceStore attendanceStore.Store
	NoteStore       noteStore.Store
	EventStore      eventStore.Store
}

// loadCSRFKey reads the CSRF secret from SIDELINE_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("SIDELINE_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("SIDELINE_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("SIDELINE_ENV") == "production" {
		log.Fatal("SIDELINE_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set SIDELINE_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// NewMux wires HTTP handlers for the app.
func NewMux(s *Stores) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("SIDELINE_ENV") == "production"

	mux := http.NewServeMux()
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: SecurityHeaders -> CSRF -> Auth -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
	)
}
