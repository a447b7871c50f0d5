package browser_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	_ "modernc.org/sqlite"

	web "stride/internal/adapters/http"
	"stride/internal/adapters/http/middleware"
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
	accountDomain "stride/internal/domain/account"
	athleteDomain "stride/internal/domain/athlete"
	programDomain "stride/internal/domain/program"
)

// testApp holds the running test server and Playwright handles.
type testApp struct {
	BaseURL string
	DB      *sql.DB
	Server  *http.Server
	PW      *playwright.Playwright
	Browser playwright.Browser
	Stores  *web.Stores
}

// newTestApp creates a fully wired app with a temp SQLite DB and starts an HTTP server.
// It seeds a coach account, an athlete with a linked account, and a program
// shared with that athlete.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init test DB: %v", err)
	}

	thStore := themeStore.NewSQLiteStore(db)
	stores := &web.Stores{
		AccountStore:     accountStore.NewSQLiteStore(db),
		AthleteStore:     athleteStore.NewSQLiteStore(db),
		ProgramStore:     programStore.NewSQLiteStore(db),
		WorkoutStore:     workoutStore.NewSQLiteStore(db),
		CompetitionStore: competitionStore.NewSQLiteStore(db),
		ThemeStore:       thStore,
		FeedbackStore:    feedbackStore.NewSQLiteStore(db),
	}

	ctx := context.Background()
	if err := orchestrators.ExecuteSeedThemes(ctx, orchestrators.SeedThemesDeps{ThemeStore: thStore}); err != nil {
		t.Fatalf("failed to seed themes: %v", err)
	}

	coach := accountDomain.Account{ID: "coach-1", Email: "coach@test.com", Role: accountDomain.RoleCoach, CreatedAt: time.Now()}
	if err := coach.SetPassword("TestPass123!"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if err := stores.AccountStore.Save(ctx, coach); err != nil {
		t.Fatalf("failed to seed coach: %v", err)
	}

	athleteAcct := accountDomain.Account{ID: "acct-ath", Email: "athlete@test.com", Role: accountDomain.RoleAthlete, CreatedAt: time.Now()}
	if err := athleteAcct.SetPassword("TestPass123!"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if err := stores.AccountStore.Save(ctx, athleteAcct); err != nil {
		t.Fatalf("failed to seed athlete account: %v", err)
	}
	ath := athleteDomain.Athlete{ID: "ath-1", AccountID: "acct-ath", CoachID: "coach-1", Name: "Test Athlete", Email: "athlete@test.com"}
	if err := stores.AthleteStore.Save(ctx, ath); err != nil {
		t.Fatalf("failed to seed athlete: %v", err)
	}

	p := programDomain.Program{
		ID: "prog-1", Name: "Base block", Weeks: 8,
		StartDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		CreatedBy: "coach-1", CreatedAt: time.Now(),
	}
	if err := stores.ProgramStore.Save(ctx, p); err != nil {
		t.Fatalf("failed to seed program: %v", err)
	}
	sh := programDomain.Share{ID: "share-1", ProgramID: "prog-1", AthleteID: "ath-1", GrantedBy: "coach-1", CreatedAt: time.Now()}
	if err := stores.ProgramStore.SaveShare(ctx, sh); err != nil {
		t.Fatalf("failed to seed share: %v", err)
	}

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// Add test port to CSRF trusted origins before creating mux
	middleware.ExtraTrustedOrigins = append(middleware.ExtraTrustedOrigins,
		fmt.Sprintf("127.0.0.1:%d", port),
		fmt.Sprintf("localhost:%d", port),
	)

	mux := web.NewMux(filepath.Join(tmpDir, "static"), stores, perf.NewCollector(perf.DefaultRingSize))
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	// Wait for server to be ready
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/api/session")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL: baseURL,
		DB:      db,
		Server:  srv,
		PW:      pw,
		Browser: browser,
		Stores:  stores,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
		db.Close()
	})

	return app
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// login posts credentials through the page's request context so the session
// cookie lands in the page's cookie jar.
func (a *testApp) login(t *testing.T, page playwright.Page, email, password string) {
	t.Helper()
	resp, err := page.Request().Post(a.BaseURL+"/api/login", playwright.APIRequestContextPostOptions{
		Data:    fmt.Sprintf(`{"email":%q,"password":%q}`, email, password),
		Headers: map[string]string{"Content-Type": "application/json"},
	})
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	if resp.Status() != 200 {
		body, _ := resp.Text()
		t.Fatalf("login failed with status %d: %s", resp.Status(), body)
	}
}

// postJSON sends a JSON body through the page's request context.
func postJSON(t *testing.T, page playwright.Page, url, body string) playwright.APIResponse {
	t.Helper()
	resp, err := page.Request().Post(url, playwright.APIRequestContextPostOptions{
		Data:    body,
		Headers: map[string]string{"Content-Type": "application/json"},
	})
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

// getJSON fetches a URL through the page's request context and decodes the body.
func getJSON(t *testing.T, page playwright.Page, url string, out any) int {
	t.Helper()
	resp, err := page.Request().Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	if out != nil {
		body, err := resp.Body()
		if err != nil {
			t.Fatalf("read body of %s: %v", url, err)
		}
		if err := json.Unmarshal(body, out); err != nil {
			t.Fatalf("decode body of %s: %v", url, err)
		}
	}
	return resp.Status()
}
