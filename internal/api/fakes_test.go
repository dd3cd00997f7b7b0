package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rohandas-dev/cabinet/internal/api"
	"github.com/rohandas-dev/cabinet/internal/api/handlers"
	"github.com/rohandas-dev/cabinet/internal/blobstore"
	"github.com/rohandas-dev/cabinet/internal/config"
	"github.com/rohandas-dev/cabinet/internal/models"
	"github.com/rohandas-dev/cabinet/internal/repositories"
)

// --- fakes ---

type fakeUserRepo struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, repositories.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	cp := *user
	f.users[user.ID] = &cp
	f.order = append(f.order, user.ID)
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.order {
		if f.users[id].Email == email {
			cp := *f.users[id]
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

type fakeFileRepo struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	files map[primitive.ObjectID]*models.File
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: map[primitive.ObjectID]*models.File{}}
}

func (f *fakeFileRepo) Create(_ context.Context, file *models.File) (*models.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	file.ID = primitive.NewObjectID()
	cp := *file
	f.files[file.ID] = &cp
	f.order = append(f.order, file.ID)
	return file, nil
}

func (f *fakeFileRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	file, ok := f.files[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *file
	return &cp, nil
}

func (f *fakeFileRepo) FindByIDAndUser(_ context.Context, id, userID primitive.ObjectID) (*models.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	file, ok := f.files[id]
	if !ok || file.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	cp := *file
	return &cp, nil
}

func (f *fakeFileRepo) ListByParent(_ context.Context, userID primitive.ObjectID, parentID *primitive.ObjectID, page int64) ([]models.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []models.File
	for _, id := range f.order {
		file := f.files[id]
		if file.UserID != userID {
			continue
		}
		if parentID == nil && file.ParentID != nil {
			continue
		}
		if parentID != nil && (file.ParentID == nil || *file.ParentID != *parentID) {
			continue
		}
		matched = append(matched, *file)
	}

	start := page * repositories.PageSize
	if start >= int64(len(matched)) {
		return nil, nil
	}
	end := start + repositories.PageSize
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return matched[start:end], nil
}

func (f *fakeFileRepo) SetPublic(_ context.Context, id, userID primitive.ObjectID, public bool) (*models.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	file, ok := f.files[id]
	if !ok || file.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	file.IsPublic = public
	cp := *file
	return &cp, nil
}

func (f *fakeFileRepo) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.files)), nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
	lastTTL  time.Duration
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]string{}}
}

func (f *fakeSessionStore) Create(_ context.Context, token, userID string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[token] = userID
	f.lastTTL = ttl
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	userID, ok := f.sessions[token]
	if !ok {
		return "", repositories.ErrNotFound
	}
	return userID, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, token)
	return nil
}

type fakeQueue struct {
	mu   sync.Mutex
	jobs []models.ThumbnailJob
}

func (f *fakeQueue) Enqueue(_ context.Context, job models.ThumbnailJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeQueue) Dequeue(ctx context.Context) (*models.ThumbnailJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.jobs) == 0 {
		return nil, errors.New("queue empty")
	}
	job := f.jobs[0]
	f.jobs = f.jobs[1:]
	return &job, nil
}

// --- test server ---

type testEnv struct {
	router   http.Handler
	users    *fakeUserRepo
	files    *fakeFileRepo
	sessions *fakeSessionStore
	queue    *fakeQueue
	blobs    *blobstore.Local
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	blobs, err := blobstore.NewLocal(t.TempDir())
	require.NoError(t, err)

	env := &testEnv{
		users:    newFakeUserRepo(),
		files:    newFakeFileRepo(),
		sessions: newFakeSessionStore(),
		queue:    &fakeQueue{},
		blobs:    blobs,
	}

	h := &handlers.Handler{
		Users:      env.users,
		Files:      env.files,
		Sessions:   env.sessions,
		Queue:      env.queue,
		Blobs:      blobs,
		DBAlive:    func() bool { return true },
		CacheAlive: func() bool { return true },
	}
	env.router = api.SetupRouter(h, env.sessions, config.CorsConfig())
	return env
}

type testRequest struct {
	method  string
	path    string
	body    any
	token   string
	basic   [2]string
	hasAuth bool
}

func (e *testEnv) do(t *testing.T, req testRequest) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}

	r := httptest.NewRequest(req.method, req.path, body)
	if req.token != "" {
		r.Header.Set("X-Token", req.token)
	}
	if req.hasAuth {
		r.SetBasicAuth(req.basic[0], req.basic[1])
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, r)
	return w
}

func (e *testEnv) register(t *testing.T, email, password string) string {
	t.Helper()
	w := e.do(t, testRequest{method: http.MethodPost, path: "/users", body: map[string]string{
		"email":    email,
		"password": password,
	}})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func (e *testEnv) connect(t *testing.T, email, password string) string {
	t.Helper()
	w := e.do(t, testRequest{method: http.MethodGet, path: "/connect", basic: [2]string{email, password}, hasAuth: true})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
