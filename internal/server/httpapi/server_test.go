package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mealgenie/backend/internal/common"
	"github.com/mealgenie/backend/internal/logging"
	"github.com/mealgenie/backend/internal/server/ai"
	"github.com/mealgenie/backend/internal/server/config"
	"github.com/mealgenie/backend/internal/server/grocery"
	"github.com/mealgenie/backend/internal/server/mailer"
	"github.com/mealgenie/backend/internal/server/mailer/mock"
	"github.com/mealgenie/backend/internal/server/nutrition"
	"github.com/mealgenie/backend/internal/server/pantry"
	"github.com/mealgenie/backend/internal/server/recipes"
	"github.com/mealgenie/backend/internal/server/users"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- in-memory fakes ---

type fakeUsersRepo struct {
	mu     sync.Mutex
	seq    int
	byID   map[string]*users.User
	byMail map[string]*users.User
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byID: map[string]*users.User{}, byMail: map[string]*users.User{}}
}

func (r *fakeUsersRepo) Create(ctx context.Context, u *users.User) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byMail[u.Email]; ok {
		return nil, common.ErrAlreadyExists
	}
	r.seq++
	cp := *u
	cp.ID = "user-" + strconv.Itoa(r.seq)
	cp.CreatedAt = time.Now()
	r.byID[cp.ID] = &cp
	r.byMail[cp.Email] = &cp
	out := cp
	return &out, nil
}

func (r *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byMail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *fakeUsersRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *fakeUsersRepo) UpdateProfile(ctx context.Context, id, name, email string) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	delete(r.byMail, u.Email)
	u.Name = name
	u.Email = email
	r.byMail[email] = u
	out := *u
	return &out, nil
}

func (r *fakeUsersRepo) SetResetToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[userID]
	if !ok {
		return common.ErrNotFound
	}
	u.ResetTokenHash = &tokenHash
	u.ResetTokenExpiresAt = &expiresAt
	return nil
}

func (r *fakeUsersRepo) ConsumeResetToken(ctx context.Context, tokenHash, newPasswordHash string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.ResetTokenHash == nil || *u.ResetTokenHash != tokenHash {
			continue
		}
		if u.ResetTokenExpiresAt == nil || !u.ResetTokenExpiresAt.After(time.Now()) {
			continue
		}
		u.PasswordHash = newPasswordHash
		u.ResetTokenHash = nil
		u.ResetTokenExpiresAt = nil
		return u.ID, nil
	}
	return "", common.ErrNotFound
}

type fakePantryRepo struct {
	mu    sync.Mutex
	seq   int
	items map[string]*pantry.Item
}

func newFakePantryRepo() *fakePantryRepo {
	return &fakePantryRepo{items: map[string]*pantry.Item{}}
}

func (r *fakePantryRepo) ListByUser(ctx context.Context, userID string) ([]pantry.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []pantry.Item{}
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *fakePantryRepo) Create(ctx context.Context, item *pantry.Item) (*pantry.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	cp := *item
	cp.ID = "item-" + strconv.Itoa(r.seq)
	r.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakePantryRepo) Update(ctx context.Context, item *pantry.Item) (*pantry.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[item.ID]
	if !ok || existing.UserID != item.UserID {
		return nil, common.ErrNotFound
	}
	*existing = *item
	out := *existing
	return &out, nil
}

func (r *fakePantryRepo) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[id]
	if !ok || existing.UserID != userID {
		return common.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// --- harness ---

type testServer struct {
	router *gin.Engine
	mailer *mock.MailerMock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		BaseURL: "http://localhost:5500/mealgenie/frontend",
		Auth: config.Auth{
			SecretKey:     "test-secret",
			TokenTTL:      time.Hour,
			ResetTokenTTL: 15 * time.Minute,
		},
	}

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	mm := &mock.MailerMock{}

	us := users.NewService(newFakeUsersRepo(), mm, cfg)
	ps := pantry.NewService(newFakePantryRepo())
	gs := grocery.NewService(nil)
	rs := recipes.NewService(nil, cfg)
	ns := nutrition.NewService(nil, nil)
	aiClient := ai.NewClient(config.API{})

	srv := NewServer(cfg, log, us, ps, gs, rs, ns, aiClient)
	return &testServer{router: srv.InitRoutes(), mailer: mm}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

var linkTokenRe = regexp.MustCompile(`token=([0-9a-f]{64})`)

// --- tests ---

func TestRegisterLoginMe_Flow(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/register", "", gin.H{
		"name": "Alice", "email": "alice@example.com", "password": "pw123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	reg := decode[map[string]string](t, w)
	require.NotEmpty(t, reg["token"])
	assert.Equal(t, "Alice", reg["name"])
	assert.Equal(t, "alice@example.com", reg["email"])

	w = ts.do(t, http.MethodPost, "/login", "", gin.H{
		"email": "alice@example.com", "password": "pw123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	login := decode[map[string]string](t, w)

	w = ts.do(t, http.MethodGet, "/me", login["token"], nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	me := decode[map[string]string](t, w)
	assert.Equal(t, "Alice", me["name"])
	assert.Equal(t, "alice@example.com", me["email"])
}

func TestRegister_Validation(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/register", "", gin.H{"email": "x@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPost, "/register", "", gin.H{
		"name": "A", "email": "dup@example.com", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(t, http.MethodPost, "/register", "", gin.H{
		"name": "B", "email": "dup@example.com", "password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ts := newTestServer(t)

	ts.do(t, http.MethodPost, "/register", "", gin.H{
		"name": "A", "email": "a@example.com", "password": "right",
	})

	// wrong password and unknown email produce identical responses
	w1 := ts.do(t, http.MethodPost, "/login", "", gin.H{"email": "a@example.com", "password": "wrong"})
	w2 := ts.do(t, http.MethodPost, "/login", "", gin.H{"email": "nobody@example.com", "password": "x"})

	assert.Equal(t, http.StatusUnauthorized, w1.Code)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
	assert.JSONEq(t, w1.Body.String(), w2.Body.String())
}

func TestSessionGuard(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodGet, "/me", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPasswordReset_Flow(t *testing.T) {
	ts := newTestServer(t)

	ts.do(t, http.MethodPost, "/register", "", gin.H{
		"name": "Alice", "email": "alice@example.com", "password": "pw123",
	})

	var sent mailer.Mail
	ts.mailer.On("Send", tmock.Anything).Run(func(args tmock.Arguments) {
		sent = args.Get(0).(mailer.Mail)
	}).Return(nil).Once()

	w := ts.do(t, http.MethodPost, "/forgot-password", "", gin.H{"email": "alice@example.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ts.mailer.AssertExpectations(t)

	match := linkTokenRe.FindStringSubmatch(sent.HTML)
	require.Len(t, match, 2)
	token := match[1]

	w = ts.do(t, http.MethodPut, "/reset-password/"+token, "", gin.H{"password": "newpw"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// old password rejected, new one accepted
	w = ts.do(t, http.MethodPost, "/login", "", gin.H{"email": "alice@example.com", "password": "pw123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodPost, "/login", "", gin.H{"email": "alice@example.com", "password": "newpw"})
	assert.Equal(t, http.StatusOK, w.Code)

	// token is single use
	w = ts.do(t, http.MethodPut, "/reset-password/"+token, "", gin.H{"password": "again"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/forgot-password", "", gin.H{"email": "ghost@example.com"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestResetPassword_GarbageToken(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPut, "/reset-password/garbage-token", "", gin.H{"password": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestPantry_CRUD(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/register", "", gin.H{
		"name": "Alice", "email": "alice@example.com", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token := decode[map[string]string](t, w)["token"]

	w = ts.do(t, http.MethodPost, "/pantry", token, gin.H{
		"name": "Rice", "quantity": "2kg", "expiresAt": "2027-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	id := created["id"].(string)

	w = ts.do(t, http.MethodGet, "/pantry", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]map[string]any](t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "Rice", items[0]["name"])

	w = ts.do(t, http.MethodPut, "/pantry/"+id, token, gin.H{
		"name": "Rice", "quantity": "1kg", "expiresAt": "2027-01-01",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = ts.do(t, http.MethodDelete, "/pantry/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodDelete, "/pantry/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAI_DisabledResponses(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/register", "", gin.H{
		"name": "A", "email": "a@example.com", "password": "pw",
	})
	token := decode[map[string]string](t, w)["token"]

	w = ts.do(t, http.MethodPost, "/ai/recipe", token, gin.H{"ingredients": []string{"rice"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AI disabled")

	w = ts.do(t, http.MethodPost, "/ai/search", token, gin.H{"query": "biryani"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AI disabled")
}
