package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"schoolconnect/internal/adapters/http/middleware"
	"schoolconnect/internal/adapters/persistence/testutil"
	"schoolconnect/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		AppMode: "dev",
		Port:    "0",
		JWT: config.JWTConfig{
			Secret:   "test-secret",
			Issuer:   "schoolconnect-test",
			TokenTTL: time.Hour,
		},
		BcryptCost: bcrypt.MinCost,
	}
	db := &config.Database{DB: testutil.NewDB(t)}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	middleware.Setup(app, cfg, zap.NewNop())
	Setup(app, db, cfg, zap.NewNop())
	return app
}

type result struct {
	status int
	header http.Header
	body   []byte
}

func (r result) decode(t *testing.T, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.body, dst), string(r.body))
}

func call(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) result {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return result{status: resp.StatusCode, header: resp.Header, body: raw}
}

// signUp registers an account with role and returns its bearer token and id
func signUp(t *testing.T, app *fiber.App, email, role string) (string, string) {
	t.Helper()

	res := call(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email": email, "name": "Test User", "password": "secret-pass", "role": role,
	}, "")
	require.Equal(t, http.StatusOK, res.status, string(res.body))

	res = call(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email": email, "password": "secret-pass",
	}, "")
	require.Equal(t, http.StatusOK, res.status, string(res.body))

	var login struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	res.decode(t, &login)
	require.Equal(t, "bearer", login.TokenType)
	return login.AccessToken, login.User.ID
}

func detail(t *testing.T, r result) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	r.decode(t, &body)
	return body.Detail
}

func TestRegisterAndLogin(t *testing.T) {
	app := newTestApp(t)

	res := call(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email": "asha@example.com", "name": "Asha", "password": "pw-123456",
	}, "")
	require.Equal(t, http.StatusOK, res.status)

	var user map[string]interface{}
	res.decode(t, &user)
	assert.Equal(t, "student", user["role"])
	assert.Equal(t, false, user["approved"])
	assert.NotContains(t, user, "hashed_password")
	assert.NotContains(t, user, "password")

	res = call(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email": "asha@example.com", "name": "Other", "password": "other-pass",
	}, "")
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, "Email already registered", detail(t, res))

	res = call(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email": "asha@example.com", "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, res.status)
	assert.NotContains(t, string(res.body), "access_token")

	res = call(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email": "asha@example.com", "password": "pw-123456",
	}, "")
	assert.Equal(t, http.StatusOK, res.status)
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	res := call(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email": "not-an-email", "password": "x",
	}, "")
	require.Equal(t, http.StatusUnprocessableEntity, res.status)

	var body struct {
		Detail string            `json:"detail"`
		Errors map[string]string `json:"errors"`
	}
	res.decode(t, &body)
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "name")

	res = call(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email": "long@example.com", "name": "Long", "password": strings.Repeat("é", 40),
	}, "")
	require.Equal(t, http.StatusUnprocessableEntity, res.status, string(res.body))
	body.Errors = nil
	res.decode(t, &body)
	assert.Contains(t, body.Errors, "password")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{broken"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMe(t *testing.T) {
	app := newTestApp(t)
	token, id := signUp(t, app, "me@example.com", "staff")

	res := call(t, app, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, res.status)
	var user map[string]interface{}
	res.decode(t, &user)
	assert.Equal(t, id, user["id"])
	assert.Equal(t, "staff", user["role"])

	res = call(t, app, http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, res.status)

	res = call(t, app, http.MethodGet, "/api/auth/me", nil, "not.a.token")
	assert.Equal(t, http.StatusUnauthorized, res.status)
}

func TestAdminRequiresRole(t *testing.T) {
	app := newTestApp(t)
	student, _ := signUp(t, app, "student@example.com", "")
	admin, _ := signUp(t, app, "admin@example.com", "admin")
	meo, _ := signUp(t, app, "meo@example.com", "meo")

	res := call(t, app, http.MethodGet, "/api/admin/stats", nil, student)
	assert.Equal(t, http.StatusForbidden, res.status)

	res = call(t, app, http.MethodGet, "/api/admin/stats", nil, "")
	assert.Equal(t, http.StatusUnauthorized, res.status)

	for _, amount := range []float64{500, 250} {
		res = call(t, app, http.MethodPost, "/api/donations", fiber.Map{
			"donor_name": "Donor", "donor_email": "donor@example.com", "amount": amount,
		}, "")
		require.Equal(t, http.StatusOK, res.status, string(res.body))
	}

	for _, token := range []string{admin, meo} {
		res = call(t, app, http.MethodGet, "/api/admin/stats", nil, token)
		require.Equal(t, http.StatusOK, res.status)

		var stats map[string]float64
		res.decode(t, &stats)
		assert.Equal(t, 750.0, stats["total_donation_amount"])
		assert.Equal(t, 2.0, stats["total_donations"])
		assert.Equal(t, 3.0, stats["total_users"])
	}
}

func TestApproveUser(t *testing.T) {
	app := newTestApp(t)
	admin, _ := signUp(t, app, "admin@example.com", "admin")
	alumnus, alumnusID := signUp(t, app, "alumnus@example.com", "alumni")

	res := call(t, app, http.MethodPut, "/api/admin/users/"+alumnusID+"/approve", nil, alumnus)
	assert.Equal(t, http.StatusForbidden, res.status)

	res = call(t, app, http.MethodPut, "/api/admin/users/"+alumnusID+"/approve", nil, admin)
	require.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `{"message":"User approved successfully"}`, string(res.body))

	res = call(t, app, http.MethodPut, "/api/admin/users/ghost/approve", nil, admin)
	assert.Equal(t, http.StatusNotFound, res.status)

	res = call(t, app, http.MethodGet, "/api/admin/users?role=alumni", nil, admin)
	require.Equal(t, http.StatusOK, res.status)
	var users []map[string]interface{}
	res.decode(t, &users)
	require.Len(t, users, 1)
	assert.Equal(t, true, users[0]["approved"])
	assert.NotContains(t, users[0], "hashed_password")
}

func TestSchools(t *testing.T) {
	app := newTestApp(t)
	token, _ := signUp(t, app, "hm@example.com", "staff")

	res := call(t, app, http.MethodPost, "/api/schools", fiber.Map{"name": "ZPHS Test", "mandal_id": "mandal-x"}, "")
	assert.Equal(t, http.StatusUnauthorized, res.status)

	res = call(t, app, http.MethodPost, "/api/schools", fiber.Map{"name": "ZPHS Test", "mandal_id": "mandal-x"}, token)
	require.Equal(t, http.StatusOK, res.status, string(res.body))
	var school map[string]interface{}
	res.decode(t, &school)
	id := school["id"].(string)
	require.NotEmpty(t, id)

	res = call(t, app, http.MethodGet, "/api/schools/"+id, nil, "")
	require.Equal(t, http.StatusOK, res.status)
	var got map[string]interface{}
	res.decode(t, &got)
	assert.Equal(t, "ZPHS Test", got["name"])
	assert.Equal(t, "mandal-x", got["mandal_id"])

	for _, term := range []string{"test", "TEST", "Test"} {
		res = call(t, app, http.MethodGet, "/api/schools?search="+term, nil, "")
		require.Equal(t, http.StatusOK, res.status)
		var list []map[string]interface{}
		res.decode(t, &list)
		require.Len(t, list, 1, term)
		assert.Equal(t, id, list[0]["id"])
	}

	res = call(t, app, http.MethodPut, "/api/schools/"+id, fiber.Map{"name": "ZPHS Renamed", "mandal_id": "mandal-y"}, token)
	require.Equal(t, http.StatusOK, res.status)

	res = call(t, app, http.MethodGet, "/api/schools/"+id, nil, "")
	res.decode(t, &got)
	assert.Equal(t, "ZPHS Renamed", got["name"])
	assert.Equal(t, school["created_at"], got["created_at"])

	res = call(t, app, http.MethodGet, "/api/schools/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, "School not found", detail(t, res))

	res = call(t, app, http.MethodPut, "/api/schools/missing", fiber.Map{"name": "X", "mandal_id": "m"}, token)
	assert.Equal(t, http.StatusNotFound, res.status)
}

func TestEmptyFilterReturnsEmptyArray(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/api/schools?mandal_id=nowhere",
		"/api/mandals",
		"/api/alumni?school_id=none&batch_year=1999",
		"/api/events?school_id=none",
		"/api/donations?school_id=none",
		"/api/forums/posts?category=none",
		"/api/bulletins?school_id=none",
		"/api/news?school_id=none",
		"/api/galleries?school_id=none",
		"/api/school-needs?status=closed",
	} {
		res := call(t, app, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, res.status, path)
		assert.JSONEq(t, `[]`, string(res.body), path)
		assert.Equal(t, "0", res.header.Get("X-Total-Count"), path)
	}
}

func TestAlumniBatchYearMustBeInteger(t *testing.T) {
	app := newTestApp(t)

	res := call(t, app, http.MethodGet, "/api/alumni?batch_year=abc", nil, "")
	require.Equal(t, http.StatusUnprocessableEntity, res.status, string(res.body))

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	res.decode(t, &body)
	assert.Contains(t, body.Errors, "batch_year")
}

func TestDonationCompleted(t *testing.T) {
	app := newTestApp(t)

	res := call(t, app, http.MethodPost, "/api/donations", fiber.Map{
		"donor_name": "Kiran", "donor_email": "kiran@example.com", "amount": 500,
	}, "")
	require.Equal(t, http.StatusOK, res.status)

	var donation map[string]interface{}
	res.decode(t, &donation)
	assert.Equal(t, "completed", donation["payment_status"])
	assert.Regexp(t, `^TXN[0-9A-F]{12}$`, donation["transaction_id"])

	res = call(t, app, http.MethodPost, "/api/donations", fiber.Map{
		"donor_name": "Kiran", "donor_email": "kiran@example.com", "amount": 0,
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, res.status)
}

func TestPagination(t *testing.T) {
	app := newTestApp(t)
	token, _ := signUp(t, app, "writer@example.com", "")

	for _, title := range []string{"one", "two", "three"} {
		res := call(t, app, http.MethodPost, "/api/bulletins", fiber.Map{"title": title, "content": "c"}, token)
		require.Equal(t, http.StatusOK, res.status)
		time.Sleep(2 * time.Millisecond)
	}

	res := call(t, app, http.MethodGet, "/api/bulletins?limit=2", nil, "")
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "3", res.header.Get("X-Total-Count"))
	var page []map[string]interface{}
	res.decode(t, &page)
	require.Len(t, page, 2)
	assert.Equal(t, "three", page[0]["title"])
	assert.Equal(t, "announcement", page[0]["category"])

	res = call(t, app, http.MethodGet, "/api/bulletins?limit=2&offset=2", nil, "")
	res.decode(t, &page)
	require.Len(t, page, 1)
	assert.Equal(t, "one", page[0]["title"])
}

func TestCommunityWrites(t *testing.T) {
	app := newTestApp(t)
	token, userID := signUp(t, app, "alum@example.com", "alumni")

	res := call(t, app, http.MethodPost, "/api/alumni", fiber.Map{"school_id": "school-001", "batch_year": 2005}, token)
	require.Equal(t, http.StatusOK, res.status, string(res.body))
	var profile map[string]interface{}
	res.decode(t, &profile)
	assert.Equal(t, userID, profile["user_id"])

	res = call(t, app, http.MethodPost, "/api/events", fiber.Map{
		"title": "Reunion", "description": "Batch of 2005", "event_date": "2026-12-20T10:00:00",
	}, token)
	require.Equal(t, http.StatusOK, res.status, string(res.body))
	var event map[string]interface{}
	res.decode(t, &event)
	assert.Equal(t, userID, event["created_by"])
	assert.Equal(t, 0.0, event["rsvp_count"])

	res = call(t, app, http.MethodPost, "/api/forums/posts", fiber.Map{"title": "Hi", "content": "Hello"}, token)
	require.Equal(t, http.StatusOK, res.status)
	var post map[string]interface{}
	res.decode(t, &post)
	assert.Equal(t, "general", post["category"])
	assert.Equal(t, userID, post["author_id"])

	res = call(t, app, http.MethodPost, "/api/news", fiber.Map{"title": "T", "content": "C"}, token)
	assert.Equal(t, http.StatusOK, res.status)

	res = call(t, app, http.MethodPost, "/api/galleries", fiber.Map{"title": "Sports", "school_id": "school-001"}, token)
	assert.Equal(t, http.StatusOK, res.status)

	res = call(t, app, http.MethodPost, "/api/school-needs", fiber.Map{
		"school_id": "school-001", "title": "Benches", "description": "Forty benches", "category": "furniture",
	}, token)
	require.Equal(t, http.StatusOK, res.status)
	var need map[string]interface{}
	res.decode(t, &need)
	assert.Equal(t, "active", need["status"])

	res = call(t, app, http.MethodPost, "/api/forums/posts", fiber.Map{"title": "Hi", "content": "Hello"}, "")
	assert.Equal(t, http.StatusUnauthorized, res.status)
}

func TestPlaceholders(t *testing.T) {
	app := newTestApp(t)
	token, _ := signUp(t, app, "p@example.com", "parent")

	res := call(t, app, http.MethodGet, "/api/chat/conversations", nil, token)
	require.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `{"message":"Chat feature - Coming soon","conversations":[]}`, string(res.body))

	res = call(t, app, http.MethodGet, "/api/mentors", nil, "")
	require.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `{"message":"Mentoring feature - Coming soon","mentors":[]}`, string(res.body))

	res = call(t, app, http.MethodGet, "/api/notifications", nil, token)
	require.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `{"message":"Notification system - Coming soon","notifications":[]}`, string(res.body))

	res = call(t, app, http.MethodGet, "/api/notifications", nil, "")
	assert.Equal(t, http.StatusUnauthorized, res.status)
}

func TestOperationalRoutes(t *testing.T) {
	app := newTestApp(t)

	res := call(t, app, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, res.status)
	var health map[string]interface{}
	res.decode(t, &health)
	assert.Equal(t, "ok", health["status"])

	res = call(t, app, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, res.status)

	res = call(t, app, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, res.status)
	assert.Contains(t, string(res.body), "schoolconnect_http_requests_total")

	res = call(t, app, http.MethodGet, "/api/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, res.status)
	assert.NotEmpty(t, detail(t, res))
}
