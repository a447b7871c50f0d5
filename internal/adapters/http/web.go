package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"stride/internal/adapters/email"
	"stride/internal/adapters/http/middleware"
	"stride/internal/adapters/http/perf"
	accountStore "stride/internal/adapters/storage/account"
	athleteStore "stride/internal/adapters/storage/athlete"
	competitionStore "stride/internal/adapters/storage/competition"
	feedbackStore "stride/internal/adapters/storage/feedback"
	programStore "stride/internal/adapters/storage/program"
	themeStore "stride/internal/adapters/storage/theme"
	workoutStore "stride/internal/adapters/storage/workout"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore     accountStore.Store
	AthleteStore     athleteStore.Store
	ProgramStore     programStore.StoreWithShares
	WorkoutStore     workoutStore.Store
	CompetitionStore competitionStore.Store
	ThemeStore       themeStore.Store
	FeedbackStore    feedbackStore.Store
}

// loadCSRFKey reads the CSRF secret from STRIDE_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("STRIDE_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("STRIDE_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("STRIDE_ENV") == "production" {
		log.Fatal("STRIDE_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set STRIDE_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var baseURL string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, base string) {
	emailSender = sender
	emailFromAddress = from
	baseURL = base
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, collector *perf.Collector) http.Handler {
	stores = s
	perfCollector = collector
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("STRIDE_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
