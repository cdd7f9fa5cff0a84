package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	hooktest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gloopclub_backend/internals/configs"
	"gloopclub_backend/internals/features/notifications/mailer"
	"gloopclub_backend/internals/features/submissions/storage/storagetest"
	submissionModel "gloopclub_backend/internals/features/submissions/submissions/model"
)

type recordingForwarder struct {
	mu      sync.Mutex
	notices []mailer.TwitterNotice
	err     error
}

func (f *recordingForwarder) ForwardTwitterSubmission(_ context.Context, n mailer.TwitterNotice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, n)
	return f.err
}

func (f *recordingForwarder) calls() []mailer.TwitterNotice {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]mailer.TwitterNotice(nil), f.notices...)
}

type harness struct {
	app    *fiber.App
	store  *storagetest.MemoryStorage
	mailer *recordingForwarder
	hook   *hooktest.Hook
}

func testConfig() *configs.Config {
	return &configs.Config{
		Environment:         "test",
		RequestTimeout:      5 * time.Second,
		CorsAllowOrigins:    "http://localhost:5173",
		NotifyFailurePolicy: "log",
		LogLevel:            "info",
		LogFormat:           "text",
		MetricsEnabled:      true,
	}
}

func newHarness(t *testing.T, mutate ...func(*configs.Config)) *harness {
	t.Helper()
	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	log, hook := hooktest.NewNullLogger()
	store := storagetest.NewMemoryStorage()
	fwd := &recordingForwarder{}

	app, err := New(cfg, log, store, fwd)
	require.NoError(t, err)

	return &harness{app: app, store: store, mailer: fwd, hook: hook}
}

func (h *harness) do(t *testing.T, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func (h *harness) loggedMessage(msg string) *logrus.Entry {
	for _, e := range h.hook.AllEntries() {
		if e.Message == msg {
			return e
		}
	}
	return nil
}

type errorBody struct {
	Error string `json:"error"`
}

type violationBody struct {
	Error []struct {
		Field   string `json:"field"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (v violationBody) fields() []string {
	out := make([]string, 0, len(v.Error))
	for _, e := range v.Error {
		out = append(out, e.Field)
	}
	return out
}

const cyberSneaker = `{"title":"Cyber Sneaker","description":"on-chain wearable","imageUrl":"https://example.com/a.png","walletAddress":"0xabc123"}`

// =============================================================================
// POST /api/submissions
// =============================================================================

func TestCreateSubmission_Created(t *testing.T) {
	h := newHarness(t)

	status, body := h.do(t, http.MethodPost, "/api/submissions", cyberSneaker)
	require.Equal(t, http.StatusCreated, status, string(body))

	var got submissionModel.Submission
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Positive(t, got.ID)
	assert.Equal(t, submissionModel.SubmissionPending, got.Status)
	assert.Equal(t, "Cyber Sneaker", got.Title)
	assert.Equal(t, "0xabc123", got.WalletAddress)
	assert.Nil(t, got.TwitterHandle)
	assert.False(t, got.CreatedAt.IsZero())

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Contains(t, raw, "twitterHandle")
	assert.Nil(t, raw["twitterHandle"])
	assert.Nil(t, raw["discordHandle"])
}

func TestCreateSubmission_IgnoresServerOwnedFields(t *testing.T) {
	h := newHarness(t)

	payload := `{"id":500,"status":"approved","createdAt":"2001-01-01T00:00:00Z",
		"title":"Cyber Sneaker","description":"on-chain wearable",
		"imageUrl":"https://example.com/a.png","walletAddress":"0xabc123"}`

	status, body := h.do(t, http.MethodPost, "/api/submissions", payload)
	require.Equal(t, http.StatusCreated, status, string(body))

	var got submissionModel.Submission
	require.NoError(t, json.Unmarshal(body, &got))
	assert.NotEqual(t, int64(500), got.ID)
	assert.Equal(t, submissionModel.SubmissionPending, got.Status)
	assert.NotEqual(t, 2001, got.CreatedAt.Year())
}

func TestCreateSubmission_ReportsEveryViolation(t *testing.T) {
	h := newHarness(t)

	status, body := h.do(t, http.MethodPost, "/api/submissions",
		`{"title":"","description":"x","imageUrl":"not-a-url","walletAddress":"0xabc"}`)
	require.Equal(t, http.StatusBadRequest, status)

	var got violationBody
	require.NoError(t, json.Unmarshal(body, &got))
	assert.ElementsMatch(t, []string{"title", "imageUrl"}, got.fields())
	assert.Equal(t, 0, h.store.SubmissionCount())
}

func TestCreateSubmission_MissingRequiredFieldPersistsNothing(t *testing.T) {
	for _, field := range []string{"title", "description", "imageUrl", "walletAddress"} {
		t.Run(field, func(t *testing.T) {
			h := newHarness(t)

			payload := map[string]string{
				"title":         "Cyber Sneaker",
				"description":   "on-chain wearable",
				"imageUrl":      "https://example.com/a.png",
				"walletAddress": "0xabc123",
			}
			delete(payload, field)
			raw, err := json.Marshal(payload)
			require.NoError(t, err)

			status, body := h.do(t, http.MethodPost, "/api/submissions", string(raw))
			require.Equal(t, http.StatusBadRequest, status)

			var got violationBody
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, []string{field}, got.fields())
			assert.Equal(t, 0, h.store.SubmissionCount())
		})
	}
}

func TestCreateSubmission_MalformedBody(t *testing.T) {
	h := newHarness(t)

	status, body := h.do(t, http.MethodPost, "/api/submissions", `{"title":`)
	require.Equal(t, http.StatusBadRequest, status)

	var got violationBody
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, []string{"body"}, got.fields())
}

func TestCreateSubmission_WrongTypeReportedWithOtherViolations(t *testing.T) {
	h := newHarness(t)

	status, body := h.do(t, http.MethodPost, "/api/submissions",
		`{"title":123,"description":"","imageUrl":"not-a-url","walletAddress":"0xabc"}`)
	require.Equal(t, http.StatusBadRequest, status)

	var got violationBody
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, []string{"title", "description", "imageUrl"}, got.fields())
	assert.Equal(t, "invalid_type", got.Error[0].Code)
	assert.Equal(t, 0, h.store.SubmissionCount())
}

func TestCreateSubmission_StorageFault(t *testing.T) {
	h := newHarness(t)
	h.store.FailNext("CreateSubmission", errors.New("duplicate key value violates unique constraint"))

	status, body := h.do(t, http.MethodPost, "/api/submissions", cyberSneaker)
	require.Equal(t, http.StatusInternalServerError, status)

	var got errorBody
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "Internal Server Error", got.Error)
	assert.NotContains(t, string(body), "duplicate key")
	assert.NotNil(t, h.loggedMessage("❌ storage fault"))
}

func TestCreateSubmission_RateLimited(t *testing.T) {
	h := newHarness(t, func(c *configs.Config) {
		c.RateLimitMax = 1
		c.RateLimitWindow = time.Minute
	})

	status, _ := h.do(t, http.MethodPost, "/api/submissions", cyberSneaker)
	require.Equal(t, http.StatusCreated, status)

	status, body := h.do(t, http.MethodPost, "/api/submissions", cyberSneaker)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Contains(t, string(body), "error")

	status, _ = h.do(t, http.MethodGet, "/api/submissions", "")
	assert.Equal(t, http.StatusOK, status)
}

// =============================================================================
// GET /api/submissions, /api/submissions/:id
// =============================================================================

func TestListSubmissions_EmptyIsArray(t *testing.T) {
	h := newHarness(t)

	status, body := h.do(t, http.MethodGet, "/api/submissions", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}

func TestListSubmissions_ReturnsAll(t *testing.T) {
	h := newHarness(t)
	h.do(t, http.MethodPost, "/api/submissions", cyberSneaker)
	h.do(t, http.MethodPost, "/api/submissions",
		`{"title":"Floating Zen","description":"peace","imageUrl":"https://example.com/z.png","walletAddress":"0x123","twitterHandle":"@gloop_fan_1"}`)

	status, body := h.do(t, http.MethodGet, "/api/submissions", "")
	require.Equal(t, http.StatusOK, status)

	var got []submissionModel.Submission
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 2)

	titles := []string{got[0].Title, got[1].Title}
	assert.ElementsMatch(t, []string{"Cyber Sneaker", "Floating Zen"}, titles)
}

func TestListSubmissions_StorageFault(t *testing.T) {
	h := newHarness(t)
	h.store.FailNext("ListSubmissions", errors.New("connection reset"))

	status, body := h.do(t, http.MethodGet, "/api/submissions", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, string(body))
}

func TestGetSubmission_RoundTrip(t *testing.T) {
	h := newHarness(t)

	_, created := h.do(t, http.MethodPost, "/api/submissions",
		`{"title":"Money Swing","description":"highs and lows","imageUrl":"https://example.com/m.png","walletAddress":"0x456","discordHandle":"collector#5678"}`)
	var want submissionModel.Submission
	require.NoError(t, json.Unmarshal(created, &want))

	status, body := h.do(t, http.MethodGet, "/api/submissions/"+itoa(want.ID), "")
	require.Equal(t, http.StatusOK, status)

	var got submissionModel.Submission
	require.NoError(t, json.Unmarshal(body, &got))
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	got.CreatedAt = want.CreatedAt
	assert.Equal(t, want, got)
}

func TestGetSubmission_NotFound(t *testing.T) {
	h := newHarness(t)

	status, body := h.do(t, http.MethodGet, "/api/submissions/999999", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"Submission not found"}`, string(body))
}

func TestGetSubmission_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "12abc", "1.5", "%2012", "12%20"} {
		t.Run(id, func(t *testing.T) {
			h := newHarness(t)

			status, body := h.do(t, http.MethodGet, "/api/submissions/"+id, "")
			assert.Equal(t, http.StatusBadRequest, status)
			assert.JSONEq(t, `{"error":"Invalid ID"}`, string(body))
		})
	}
}

func TestGetSubmission_StorageFault(t *testing.T) {
	h := newHarness(t)
	h.store.FailNext("GetSubmission", errors.New("timeout"))

	status, body := h.do(t, http.MethodGet, "/api/submissions/1", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, string(body))
}

// =============================================================================
// POST /api/twitter-submissions
// =============================================================================

const aliceQuote = `{"twitterHandle":"@alice","quoteContent":"great drop"}`

func TestCreateTwitterSubmission_Created(t *testing.T) {
	h := newHarness(t)

	status, body := h.do(t, http.MethodPost, "/api/twitter-submissions", aliceQuote)
	require.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"success":true}`, string(body))

	rows := h.store.TwitterSubmissions()
	require.Len(t, rows, 1)
	assert.Equal(t, "@alice", rows[0].TwitterHandle)
	assert.Equal(t, "great drop", rows[0].QuoteContent)

	calls := h.mailer.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, mailer.TwitterNotice{TwitterHandle: "@alice", QuoteContent: "great drop"}, calls[0])
}

func TestCreateTwitterSubmission_Validation(t *testing.T) {
	h := newHarness(t)

	status, body := h.do(t, http.MethodPost, "/api/twitter-submissions", `{"twitterHandle":"","quoteContent":""}`)
	require.Equal(t, http.StatusBadRequest, status)

	var got violationBody
	require.NoError(t, json.Unmarshal(body, &got))
	assert.ElementsMatch(t, []string{"twitterHandle", "quoteContent"}, got.fields())
	assert.Empty(t, h.store.TwitterSubmissions())
	assert.Empty(t, h.mailer.calls())
}

func TestCreateTwitterSubmission_WrongTypeReportedWithOtherViolations(t *testing.T) {
	h := newHarness(t)

	status, body := h.do(t, http.MethodPost, "/api/twitter-submissions", `{"twitterHandle":["@a"],"quoteContent":""}`)
	require.Equal(t, http.StatusBadRequest, status)

	var got violationBody
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, []string{"twitterHandle", "quoteContent"}, got.fields())
	assert.Equal(t, "invalid_type", got.Error[0].Code)
	assert.Equal(t, "required", got.Error[1].Code)
	assert.Empty(t, h.store.TwitterSubmissions())
	assert.Empty(t, h.mailer.calls())
}

func TestCreateTwitterSubmission_StorageFaultSkipsNotification(t *testing.T) {
	h := newHarness(t)
	h.store.FailNext("CreateTwitterSubmission", errors.New("connection refused"))

	status, body := h.do(t, http.MethodPost, "/api/twitter-submissions", aliceQuote)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, string(body))
	assert.Empty(t, h.mailer.calls())
}

func TestCreateTwitterSubmission_NotificationFailureLogged(t *testing.T) {
	h := newHarness(t)
	h.mailer.err = errors.New("resend unavailable")

	status, body := h.do(t, http.MethodPost, "/api/twitter-submissions", aliceQuote)
	require.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"success":true}`, string(body))

	entry := h.loggedMessage("❌ notification fault")
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Len(t, h.store.TwitterSubmissions(), 1)
}

func TestCreateTwitterSubmission_NotificationFailureFailsWhenConfigured(t *testing.T) {
	h := newHarness(t, func(c *configs.Config) { c.NotifyFailurePolicy = "fail" })
	h.mailer.err = errors.New("resend unavailable")

	status, body := h.do(t, http.MethodPost, "/api/twitter-submissions", aliceQuote)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, string(body))

	// the row is not rolled back
	assert.Len(t, h.store.TwitterSubmissions(), 1)
}

// =============================================================================
// health / metrics / wiring
// =============================================================================

func TestHealth(t *testing.T) {
	h := newHarness(t)

	status, body := h.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"database":"Connected"`)

	h.store.FailNext("Ping", errors.New("no route to host"))
	status, body = h.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Contains(t, string(body), `"status":"DOWN"`)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newHarness(t)
	h.do(t, http.MethodPost, "/api/submissions", cyberSneaker)

	status, body := h.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "gloopclub_submissions_created_total")
	assert.Contains(t, string(body), "gloopclub_http_requests_total")
}

func TestRequestIDEchoed(t *testing.T) {
	h := newHarness(t)

	req := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
	req.Header.Set("X-Request-ID", "req-123")
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "req-123", resp.Header.Get("X-Request-ID"))
}

func TestNew_RejectsUnknownPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.NotifyFailurePolicy = "retry"
	log, _ := hooktest.NewNullLogger()

	_, err := New(cfg, log, storagetest.NewMemoryStorage(), &recordingForwarder{})
	assert.Error(t, err)
}

func itoa(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
