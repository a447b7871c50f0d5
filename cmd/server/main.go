package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	emailPkg "stride/internal/adapters/email"
	web "stride/internal/adapters/http"
	"stride/internal/adapters/http/perf"
	"stride/internal/adapters/storage"
	accountStore "stride/internal/adapters/storage/account"
	athleteStore "stride/internal/adapters/storage/athlete"
	competitionStore "stride/internal/adapters/storage/competition"
	feedbackStore "stride/internal/adapters/storage/feedback"
	programStore "stride/internal/adapters/storage/program"
	themeStore "stride/internal/adapters/storage/theme"
	workoutStore "stride/internal/adapters/storage/workout"
	"stride/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// WAL mode, foreign keys, and a busy timeout for concurrent readers
	dbPath := envOrDefault("STRIDE_DB", "stride.db")
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

	log.Println("Database initialized successfully!")

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	thStore := themeStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:     acctStore,
		AthleteStore:     athleteStore.NewSQLiteStore(timedDB),
		ProgramStore:     programStore.NewSQLiteStore(timedDB),
		WorkoutStore:     workoutStore.NewSQLiteStore(timedDB),
		CompetitionStore: competitionStore.NewSQLiteStore(timedDB),
		ThemeStore:       thStore,
		FeedbackStore:    feedbackStore.NewSQLiteStore(timedDB),
	}

	// Seed initial admin account if no accounts exist
	adminEmail := envOrDefault("STRIDE_ADMIN_EMAIL", "admin@stride.run")
	adminPassword := envOrDefault("STRIDE_ADMIN_PASSWORD", "change me soon")
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), orchestrators.SeedAdminDeps{AccountStore: acctStore}, adminEmail, adminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Seed the default training theme catalog
	if err := orchestrators.ExecuteSeedThemes(context.Background(), orchestrators.SeedThemesDeps{ThemeStore: thStore}); err != nil {
		log.Fatalf("failed to seed themes: %v", err)
	}

	// Configure email sender
	resendKey := os.Getenv("STRIDE_RESEND_KEY")
	emailFrom := envOrDefault("STRIDE_RESEND_FROM", "Stride <noreply@stride.run>")
	base := envOrDefault("STRIDE_BASE_URL", "http://localhost:8080")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, base)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, base)
		if os.Getenv("STRIDE_ENV") == "production" {
			log.Println("WARNING: STRIDE_RESEND_KEY is not set; email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop; set STRIDE_RESEND_KEY for real delivery)")
		}
	}

	// HTTP handler with middleware (collector feeds timing + perf endpoint)
	mux := web.NewMux("static", stores, collector)

	addr := envOrDefault("STRIDE_ADDR", ":8080")
	log.Printf("Stride %s starting on %s (env=%s)", version, addr, envOrDefault("STRIDE_ENV", "development"))

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
