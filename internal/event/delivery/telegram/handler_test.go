package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"quick-event/internal/event"
	"quick-event/internal/event/delivery/telegram"
	pkgTelegram "quick-event/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockEventUseCase struct {
	mu          sync.Mutex
	parseInputs []event.ParseInput
	parseOutput event.ParseOutput
	parseErr    error
	createOut   event.CreateOutput
	createErr   error
}

func (m *mockEventUseCase) Parse(ctx context.Context, input event.ParseInput) (event.ParseOutput, error) {
	m.mu.Lock()
	m.parseInputs = append(m.parseInputs, input)
	m.mu.Unlock()
	return m.parseOutput, m.parseErr
}

func (m *mockEventUseCase) Create(ctx context.Context, input event.ParseInput) (event.CreateOutput, error) {
	m.mu.Lock()
	m.parseInputs = append(m.parseInputs, input)
	m.mu.Unlock()
	return m.createOut, m.createErr
}

func (m *mockEventUseCase) lastInput() (event.ParseInput, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.parseInputs) == 0 {
		return event.ParseInput{}, false
	}
	return m.parseInputs[len(m.parseInputs)-1], true
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type testEnv struct {
	engine           *gin.Engine
	muc              *mockEventUseCase
	capturedMessages *[]string
	capturedMu       *sync.Mutex
}

func newTestEnv(t *testing.T) (*testEnv, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var mu sync.Mutex
	capturedMessages := &[]string{}

	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/sendMessage") {
			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			if text, ok := payload["text"].(string); ok {
				mu.Lock()
				*capturedMessages = append(*capturedMessages, text)
				mu.Unlock()
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	muc := &mockEventUseCase{
		parseOutput: event.ParseOutput{
			Summary:     "Personal | Dinner | 🗓️: Mar 5 2025 | 🕓: 7p-8p",
			Description: "Open prefilled event page",
			URL:         "https://calendar.google.com/calendar/u/0/r/eventedit?text=Dinner",
		},
	}

	engine := gin.New()
	h := telegram.New(&mockLogger{}, muc, bot)
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return &testEnv{
		engine:           engine,
		muc:              muc,
		capturedMessages: capturedMessages,
		capturedMu:       &mu,
	}, tgServer
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func (env *testEnv) waitForMessages(atLeast int, timeout time.Duration) []string {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		env.capturedMu.Lock()
		n := len(*env.capturedMessages)
		env.capturedMu.Unlock()
		if n >= atLeast {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	env.capturedMu.Lock()
	defer env.capturedMu.Unlock()
	return append([]string(nil), *env.capturedMessages...)
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	update := pkgTelegram.Update{UpdateID: 1, Message: nil}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestHandleStart(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "/start")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	msgs := env.waitForMessages(1, 500*time.Millisecond)
	assertContains(t, msgs, "Quick Event")
}

func TestHandleQuery(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "Dinner tomorrow at 7")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	msgs := env.waitForMessages(1, 500*time.Millisecond)
	assertContains(t, msgs, "Dinner")
	assertContains(t, msgs, "Open in Calendar")

	in, ok := env.muc.lastInput()
	if !ok {
		t.Fatal("use case was never invoked")
	}
	if in.Profile != event.ProfilePersonal {
		t.Errorf("Profile = %q, want the personal default", in.Profile)
	}
}

func TestProfileSwitch(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/work")
	env.waitForMessages(1, 500*time.Millisecond)

	sendWebhook(env.engine, "Review at 3")
	env.waitForMessages(2, 500*time.Millisecond)

	in, ok := env.muc.lastInput()
	if !ok {
		t.Fatal("use case was never invoked")
	}
	if in.Profile != event.ProfileWork {
		t.Errorf("Profile = %q, want %q after /work", in.Profile, event.ProfileWork)
	}
}

func TestCreateCommandWithoutCalendar(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.createErr = event.ErrCalendarUnavailable

	sendWebhook(env.engine, "/create Dinner at 7")
	msgs := env.waitForMessages(1, 500*time.Millisecond)
	assertContains(t, msgs, "not configured")
}

func TestCreateCommand(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.createOut = event.CreateOutput{
		Parsed: event.ParseOutput{Summary: "Personal | Dinner"},
		Link:   "https://calendar.google.com/ev-1",
	}

	sendWebhook(env.engine, "/create Dinner at 7")
	msgs := env.waitForMessages(1, 500*time.Millisecond)
	assertContains(t, msgs, "Created!")
	assertContains(t, msgs, "https://calendar.google.com/ev-1")
}
