package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stroydoc/internal/access"
	"stroydoc/internal/config"
	"stroydoc/internal/handlers"
	"stroydoc/internal/models"
	"stroydoc/internal/schema"
	"stroydoc/internal/server"
)

const testPassword = "Пароль123"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	// роутер грузит шаблоны по пути относительно корня репозитория
	if err := os.Chdir("../.."); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type insertCall struct {
	slug string
	rec  schema.Record
}

// spyStore фиксирует обращения обработчиков к репозиторию.
type spyStore struct {
	rows      []map[string]any
	searchErr error
	lastQuery string

	insertCalls []insertCall
	insertErr   error

	deleteCalls []int64
	deleteErr   error

	exists    bool
	existsErr error
}

func (s *spyStore) Search(_ context.Context, _ *access.Category, q string) ([]map[string]any, error) {
	s.lastQuery = q
	return s.rows, s.searchErr
}

func (s *spyStore) Insert(_ context.Context, cat *access.Category, rec schema.Record) (int64, error) {
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	s.insertCalls = append(s.insertCalls, insertCall{slug: cat.Slug, rec: rec})
	return int64(len(s.insertCalls)), nil
}

func (s *spyStore) Delete(_ context.Context, _ *access.Category, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleteCalls = append(s.deleteCalls, id)
	return nil
}

func (s *spyStore) EstimateExists(_ context.Context, _ int64) (bool, error) {
	return s.exists, s.existsErr
}

type fakeUsers struct {
	byName map[string]*models.User
}

func (f *fakeUsers) ByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := f.byName[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

type env struct {
	store  *spyStore
	srv    *httptest.Server
	client *http.Client
}

func newEnv(t *testing.T) *env {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	users := map[string]*models.User{}
	for i, acc := range []struct {
		name string
		role models.UserRole
	}{
		{"ps_user", models.RolePS},
		{"ts_user", models.RoleTS},
		{"ss_user", models.RoleSS},
		{"sm_user", models.RoleSM},
		{"szip_user", models.RoleSZP},
		{"cust_user", models.RoleCust},
		{"mgr_user", models.RoleMgr},
	} {
		users[acc.name] = &models.User{
			ID:           uint(i + 1),
			Username:     acc.name,
			PasswordHash: string(hash),
			Role:         acc.role,
		}
	}

	store := &spyStore{exists: true}
	h := handlers.New(store, &fakeUsers{byName: users}, zerolog.Nop())

	cfg := &config.Config{
		Environment:   "test",
		SessionSecret: "test-secret",
	}
	srv := httptest.NewServer(server.NewRouter(cfg, h))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &env{
		store: store,
		srv:   srv,
		client: &http.Client{
			Jar: jar,
			// редиректы проверяем руками
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (e *env) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := e.client.Get(e.srv.URL + path)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, string(body)
}

func (e *env) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := e.client.Post(
		e.srv.URL+path,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp
}

func (e *env) login(t *testing.T, username string) {
	t.Helper()
	resp := e.postForm(t, "/login", url.Values{
		"username": {username},
		"password": {testPassword},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
}
