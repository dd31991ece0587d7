package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/threadline/internal/config"
	"github.com/example/threadline/internal/models"
	"github.com/example/threadline/internal/routes"
	"github.com/example/threadline/internal/services"
)

const testGoogleClientID = "test-client-id.apps.googleusercontent.com"

type fakeMailer struct {
	otpMails          []string
	confirmationMails []string
	fail              bool
}

func (m *fakeMailer) SendOtp(to, code string) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.otpMails = append(m.otpMails, to)
	return nil
}

func (m *fakeMailer) SendRegistrationConfirmation(to, name string) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.confirmationMails = append(m.confirmationMails, to)
	return nil
}

type testEnv struct {
	t      *testing.T
	app    *fiber.App
	db     *gorm.DB
	cfg    *config.Config
	mailer *fakeMailer
}

// newTokenInfoServer fakes Google's tokeninfo endpoint. It accepts the token
// "valid-token" for the test client and "foreign-token" for another client.
func newTokenInfoServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// tokeninfo encodes exp as a decimal string.
		exp := strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10)
		switch r.URL.Query().Get("id_token") {
		case "valid-token":
			json.NewEncoder(w).Encode(map[string]string{
				"aud":   testGoogleClientID,
				"email": "oauth@example.com",
				"name":  "OAuth User",
				"exp":   exp,
			})
		case "foreign-token":
			json.NewEncoder(w).Encode(map[string]string{
				"aud":   "other-client-id",
				"email": "oauth@example.com",
				"name":  "OAuth User",
				"exp":   exp,
			})
		default:
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid_token"})
		}
	}))

	t.Cleanup(srv.Close)
	return srv
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.OtpRecord{},
		&models.Coupon{},
		&models.Contact{},
		&models.Order{},
	))

	cfg := &config.Config{
		JWTSecret:         "test-jwt-secret",
		TokenExpires:      time.Hour,
		OAuthTokenExpires: 24 * time.Hour,
		GoogleClientID:    testGoogleClientID,
	}

	mailer := &fakeMailer{}
	google := services.NewGoogleVerifierWithEndpoint(testGoogleClientID, newTokenInfoServer(t).URL)

	app := fiber.New(fiber.Config{ErrorHandler: routes.ErrorHandler})
	routes.RegisterWithServices(app, db, cfg, mailer, google)

	return &testEnv{t: t, app: app, db: db, cfg: cfg, mailer: mailer}
}

func (env *testEnv) request(method, path string, body interface{}, headers map[string]string) *http.Response {
	env.t.Helper()

	var reader io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		require.NoError(env.t, json.NewEncoder(buf).Encode(body))
		reader = buf
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := env.app.Test(req, -1)
	require.NoError(env.t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
