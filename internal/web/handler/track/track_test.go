package track

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoVisitorDash/GoVisitorDash/internal/config"
	"github.com/GoVisitorDash/GoVisitorDash/internal/db/controller/visitor"
	"github.com/GoVisitorDash/GoVisitorDash/internal/db/models"
	"github.com/GoVisitorDash/GoVisitorDash/internal/enrich"
	pipeline "github.com/GoVisitorDash/GoVisitorDash/internal/track"
)

const testRedirectTarget = "https://example.com/away"

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Visitor{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func newTestApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","city":"Paris","regionName":"Ile-de-France"}`))
	}))
	t.Cleanup(geo.Close)

	resolver := enrich.New(config.Enrichment{
		EchoURL:        "http://echo.invalid",
		GeoURL:         geo.URL + "/json/",
		TimeoutSeconds: 1,
	})

	cfg := &config.Config{}
	cfg.Webserver.RedirectTarget = testRedirectTarget

	service := &Service{
		cfg:     cfg,
		tracker: pipeline.NewService(db, resolver),
	}

	app := fiber.New()
	app.Post(Path, service.Post)

	return app
}

func TestService_Post_RecordsAndRedirects(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(t, db)

	body := `{"language": "en-US", "platform": "MacIntel"}`
	req := httptest.NewRequest(http.MethodPost, Path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderUserAgent, "test-agent")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, testRedirectTarget, resp.Header.Get(fiber.HeaderLocation))

	all, err := visitor.All(db)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "test-agent", all[0].UserAgent)
	assert.Equal(t, "en-US", all[0].Language)
	assert.Equal(t, "MacIntel", all[0].Platform)
	assert.NotEmpty(t, all[0].Address)
}

func TestService_Post_EmptyBody(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(t, db)

	req := httptest.NewRequest(http.MethodPost, Path, nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	// a bare visit is still recorded and redirected
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, testRedirectTarget, resp.Header.Get(fiber.HeaderLocation))

	all, err := visitor.All(db)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].Language)
}

func TestService_Post_UnparseableBody(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(t, db)

	req := httptest.NewRequest(http.MethodPost, Path, strings.NewReader("not json at all"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	all, err := visitor.All(db)
	require.NoError(t, err)
	require.Len(t, all, 1, "an unparseable payload still records a bare visit")
}

func TestService_Post_StoreFailureStillRedirects(t *testing.T) {
	// a nil database makes the pipeline store step fail
	app := newTestApp(t, nil)

	req := httptest.NewRequest(http.MethodPost, Path, nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, testRedirectTarget, resp.Header.Get(fiber.HeaderLocation))
}
