package app

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/aminafridi/PhysioCare-sub000/internal/adapter/repository"
	"github.com/aminafridi/PhysioCare-sub000/internal/adapter/store"
	internalApp "github.com/aminafridi/PhysioCare-sub000/internal/app"
	"github.com/aminafridi/PhysioCare-sub000/internal/config"
	domain "github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/internal/service"
	"github.com/aminafridi/PhysioCare-sub000/internal/session"

	"github.com/aminafridi/PhysioCare-sub000/pkg/middleware"

	"github.com/pocketbase/pocketbase/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testSecret = "router-test-secret"

// testEnv shares one memory store across the PocketBase test apps of a test.
type testEnv struct {
	store *store.MemoryStore
	cfg   *config.Config
}

func newTestEnv() *testEnv {
	cfg := &config.Config{}
	cfg.Session.Secret = testSecret
	return &testEnv{store: store.NewMemoryStore(), cfg: cfg}
}

func (env *testEnv) factory(t testing.TB) *tests.TestApp {
	testApp, err := tests.NewTestApp()
	require.NoError(t, err)

	c, err := internalApp.NewContainer(testApp, env.cfg, env.store, nil, zap.NewNop())
	require.NoError(t, err)

	RegisterRoutes(testApp, c)
	return testApp
}

// outageFactory builds the app over a backend that could not be opened.
func (env *testEnv) outageFactory(t testing.TB) *tests.TestApp {
	testApp, err := tests.NewTestApp()
	require.NoError(t, err)

	down := store.NewUnavailableStore(errors.New("dial tcp 127.0.0.1:27017: connection refused"))
	c, err := internalApp.NewContainer(testApp, env.cfg, down, nil, zap.NewNop())
	require.NoError(t, err)

	RegisterRoutes(testApp, c)
	return testApp
}

func (env *testEnv) users() domain.AdminUserRepository {
	return repository.NewAdminUserRepo(env.store, zap.NewNop())
}

func (env *testEnv) appointments() domain.AppointmentRepository {
	return repository.NewAppointmentRepo(env.store, zap.NewNop())
}

func sessionCookie(t testing.TB, sess *domain.Session) string {
	rec := httptest.NewRecorder()
	require.NoError(t, session.NewCookieStore(testSecret, false).Save(rec, sess))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0].Name + "=" + cookies[0].Value
}

func formBody(values url.Values) *strings.Reader {
	return strings.NewReader(values.Encode())
}

var formHeaders = map[string]string{"Content-Type": "application/x-www-form-urlencoded"}

// multipartBody encodes fields plus an "image" file part and returns the
// body with its Content-Type.
func multipartBody(t testing.TB, fields url.Values, image []byte) (*bytes.Buffer, string) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, vs := range fields {
		for _, v := range vs {
			require.NoError(t, w.WriteField(k, v))
		}
	}
	part, err := w.CreateFormFile("image", "photo.png")
	require.NoError(t, err)
	_, err = part.Write(image)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

// pngOfSize returns n bytes that start with the PNG signature.
func pngOfSize(n int) []byte {
	data := make([]byte, n)
	copy(data, "\x89PNG\r\n\x1a\n")
	return data
}

func expectRedirect(location string) func(testing.TB, *tests.TestApp, *http.Response) {
	return func(t testing.TB, _ *tests.TestApp, res *http.Response) {
		assert.Equal(t, location, res.Header.Get("Location"))
	}
}

func TestPublicRoutes(t *testing.T) {
	env := newTestEnv()

	scenarios := []tests.ApiScenario{
		{
			Name:           "home falls back to the built-in services",
			Method:         http.MethodGet,
			URL:            "/",
			ExpectedStatus: http.StatusOK,
			ExpectedContent: []string{
				"PhysioCare Clinic",
				"Sports Injury Rehabilitation",
			},
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
		},
		{
			Name:            "service detail by slug",
			Method:          http.MethodGet,
			URL:             "/services/sports-injury-rehabilitation",
			ExpectedStatus:  http.StatusOK,
			ExpectedContent: []string{"Sports Injury Rehabilitation"},
			ExpectedEvents:  map[string]int{"*": 0},
			TestAppFactory:  env.factory,
		},
		{
			Name:            "unknown service slug",
			Method:          http.MethodGet,
			URL:             "/services/does-not-exist",
			ExpectedStatus:  http.StatusNotFound,
			ExpectedContent: []string{"Page not found"},
			ExpectedEvents:  map[string]int{"*": 0},
			TestAppFactory:  env.factory,
		},
		{
			Name:            "unknown blog slug",
			Method:          http.MethodGet,
			URL:             "/blog/does-not-exist",
			ExpectedStatus:  http.StatusNotFound,
			ExpectedContent: []string{"Page not found"},
			ExpectedEvents:  map[string]int{"*": 0},
			TestAppFactory:  env.factory,
		},
		{
			Name:               "htmx navigation renders only the content block",
			Method:             http.MethodGet,
			URL:                "/about",
			Headers:            map[string]string{"HX-Request": "true", "HX-Target": "main-content"},
			ExpectedStatus:     http.StatusOK,
			NotExpectedContent: []string{"<html"},
			ExpectedEvents:     map[string]int{"*": 0},
			TestAppFactory:     env.factory,
		},
		{
			Name:           "embedded assets",
			Method:         http.MethodGet,
			URL:            "/assets/site.css",
			ExpectedStatus: http.StatusOK,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
		},
		{
			Name:           "contact form validation",
			Method:         http.MethodPost,
			URL:            "/contact",
			Body:           formBody(url.Values{"name": {"Jane"}}),
			Headers:        formHeaders,
			ExpectedStatus: http.StatusUnprocessableEntity,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
		},
	}

	for _, scenario := range scenarios {
		scenario.Test(t)
	}
}

func TestBooking(t *testing.T) {
	env := newTestEnv()

	scenarios := []tests.ApiScenario{
		{
			Name:   "missing fields are rejected",
			Method: http.MethodPost,
			URL:    "/book",
			Body: formBody(url.Values{
				"name": {"Jane Doe"},
			}),
			Headers:         formHeaders,
			ExpectedStatus:  http.StatusUnprocessableEntity,
			ExpectedContent: []string{"Please enter your email"},
			ExpectedEvents:  map[string]int{"*": 0},
			TestAppFactory:  env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, _ *http.Response) {
				assert.Empty(t, env.appointments().GetAll(context.Background()))
			},
		},
		{
			Name:   "valid request creates a pending appointment",
			Method: http.MethodPost,
			URL:    "/book",
			Body: formBody(url.Values{
				"name":    {"Jane Doe"},
				"email":   {"jane@example.com"},
				"phone":   {"+1 555 010 2030"},
				"service": {"Sports Injury Rehabilitation"},
				"date":    {"2026-11-02"},
				"time":    {"10:00"},
			}),
			Headers:         formHeaders,
			ExpectedStatus:  http.StatusOK,
			ExpectedContent: []string{"Thank you, Jane Doe!"},
			ExpectedEvents:  map[string]int{"*": 0},
			TestAppFactory:  env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, _ *http.Response) {
				appts := env.appointments().GetAll(context.Background())
				require.Len(t, appts, 1)
				assert.Equal(t, domain.StatusPending, appts[0].Status)
				assert.Equal(t, "2026-11-02", appts[0].Date)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Test(t)
	}
}

func TestStoreOutage(t *testing.T) {
	env := newTestEnv()
	stored := &domain.Session{
		ID:           "u1",
		Email:        "owner@example.com",
		Name:         "Owner",
		Role:         domain.RoleSuperadmin,
		AllowedPages: []string{},
	}

	scenarios := []tests.ApiScenario{
		{
			Name:            "services page renders the built-in list",
			Method:          http.MethodGet,
			URL:             "/services",
			ExpectedStatus:  http.StatusOK,
			ExpectedContent: []string{"Sports Injury Rehabilitation"},
			ExpectedEvents:  map[string]int{"*": 0},
			TestAppFactory:  env.outageFactory,
		},
		{
			Name:            "home renders with default settings",
			Method:          http.MethodGet,
			URL:             "/",
			ExpectedStatus:  http.StatusOK,
			ExpectedContent: []string{"PhysioCare Clinic"},
			ExpectedEvents:  map[string]int{"*": 0},
			TestAppFactory:  env.outageFactory,
		},
		{
			Name:           "stored admin keeps the session",
			Method:         http.MethodGet,
			URL:            "/admin/dashboard",
			Headers:        map[string]string{"Cookie": sessionCookie(t, stored)},
			ExpectedStatus: http.StatusOK,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.outageFactory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, res *http.Response) {
				assert.Empty(t, res.Header.Get("Location"))
				for _, c := range res.Cookies() {
					assert.GreaterOrEqual(t, c.MaxAge, 0, "session cookie cleared")
				}
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Test(t)
	}
}

func TestRequestLogging(t *testing.T) {
	env := newTestEnv()
	obsCore, logs := observer.New(zapcore.InfoLevel)

	factory := func(t testing.TB) *tests.TestApp {
		testApp, err := tests.NewTestApp()
		require.NoError(t, err)
		c, err := internalApp.NewContainer(testApp, env.cfg, env.store, nil, zap.New(obsCore))
		require.NoError(t, err)
		RegisterRoutes(testApp, c)
		return testApp
	}

	const incoming = "7f1d3c2e-4b5a-4c6d-8e9f-0a1b2c3d4e5f"

	scenarios := []tests.ApiScenario{
		{
			Name:           "request id is generated and logged",
			Method:         http.MethodGet,
			URL:            "/services",
			ExpectedStatus: http.StatusOK,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, res *http.Response) {
				id := res.Header.Get(middleware.RequestIDHeader)
				require.NotEmpty(t, id)

				served := logs.FilterMessage("Request served").FilterField(zap.String("request_id", id)).All()
				require.Len(t, served, 1)
				fields := served[0].ContextMap()
				assert.Equal(t, "/services", fields["path"])
				assert.Equal(t, int64(http.StatusOK), fields["status"])
			},
		},
		{
			Name:           "valid incoming request id is kept",
			Method:         http.MethodGet,
			URL:            "/login",
			Headers:        map[string]string{middleware.RequestIDHeader: incoming},
			ExpectedStatus: http.StatusOK,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, res *http.Response) {
				assert.Equal(t, incoming, res.Header.Get(middleware.RequestIDHeader))
			},
		},
		{
			Name:           "malformed incoming request id is replaced",
			Method:         http.MethodGet,
			URL:            "/login",
			Headers:        map[string]string{middleware.RequestIDHeader: "not-a-uuid"},
			ExpectedStatus: http.StatusOK,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, res *http.Response) {
				id := res.Header.Get(middleware.RequestIDHeader)
				assert.NotEqual(t, "not-a-uuid", id)
				assert.Len(t, id, 36)
			},
		},
		{
			Name:           "admin requests log the user",
			Method:         http.MethodGet,
			URL:            "/admin/dashboard",
			Headers:        map[string]string{"Cookie": sessionCookie(t, service.DefaultSession())},
			ExpectedStatus: http.StatusOK,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, res *http.Response) {
				id := res.Header.Get(middleware.RequestIDHeader)
				served := logs.FilterMessage("Request served").FilterField(zap.String("request_id", id)).All()
				require.Len(t, served, 1)
				assert.Equal(t, service.DefaultAdminID, served[0].ContextMap()["user_id"])
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Test(t)
	}
}

func TestAdminAuth(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	editorID, err := env.users().Add(ctx, domain.AdminUser{
		Email:        "editor@example.com",
		Password:     "secret1",
		Name:         "Eddie",
		Role:         domain.RoleEditor,
		AllowedPages: []string{domain.PageServices},
	})
	require.NoError(t, err)

	editor := &domain.Session{
		ID:           editorID,
		Email:        "editor@example.com",
		Name:         "Eddie",
		Role:         domain.RoleEditor,
		AllowedPages: []string{domain.PageServices},
	}

	scenarios := []tests.ApiScenario{
		{
			Name:           "admin pages need a session",
			Method:         http.MethodGet,
			URL:            "/admin/dashboard",
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc:  expectRedirect("/login"),
		},
		{
			Name:           "tampered cookie is rejected",
			Method:         http.MethodGet,
			URL:            "/admin/dashboard",
			Headers:        map[string]string{"Cookie": session.CookieName + "=not-a-token"},
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc:  expectRedirect("/login"),
		},
		{
			Name:   "wrong password",
			Method: http.MethodPost,
			URL:    "/login",
			Body: formBody(url.Values{
				"email":    {"editor@example.com"},
				"password": {"nope"},
			}),
			Headers:         formHeaders,
			ExpectedStatus:  http.StatusUnauthorized,
			ExpectedContent: []string{"Invalid email or password"},
			ExpectedEvents:  map[string]int{"*": 0},
			TestAppFactory:  env.factory,
		},
		{
			Name:   "default account login lands on the dashboard",
			Method: http.MethodPost,
			URL:    "/login",
			Body: formBody(url.Values{
				"email":    {service.DefaultAdminEmail},
				"password": {service.DefaultAdminPassword},
			}),
			Headers:        formHeaders,
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, res *http.Response) {
				assert.Equal(t, "/admin/dashboard", res.Header.Get("Location"))
				assert.Contains(t, res.Header.Get("Set-Cookie"), session.CookieName+"=")
			},
		},
		{
			Name:   "editor login lands on the first allowed page",
			Method: http.MethodPost,
			URL:    "/login",
			Body: formBody(url.Values{
				"email":    {"editor@example.com"},
				"password": {"secret1"},
			}),
			Headers:        formHeaders,
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc:  expectRedirect("/admin/services"),
		},
		{
			Name:            "superadmin sees the dashboard",
			Method:          http.MethodGet,
			URL:             "/admin/dashboard",
			Headers:         map[string]string{"Cookie": sessionCookie(t, service.DefaultSession())},
			ExpectedStatus:  http.StatusOK,
			ExpectedContent: []string{service.DefaultAdminName},
			ExpectedEvents:  map[string]int{"*": 0},
			TestAppFactory:  env.factory,
		},
		{
			Name:           "editor is sent back to an allowed page",
			Method:         http.MethodGet,
			URL:            "/admin/appointments",
			Headers:        map[string]string{"Cookie": sessionCookie(t, editor)},
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, res *http.Response) {
				assert.True(t, strings.HasPrefix(res.Header.Get("Location"), "/admin/services?error="))
			},
		},
		{
			Name:            "editor opens an allowed page",
			Method:          http.MethodGet,
			URL:             "/admin/services",
			Headers:         map[string]string{"Cookie": sessionCookie(t, editor)},
			ExpectedStatus:  http.StatusOK,
			ExpectedContent: []string{"/admin/services/new"},
			ExpectedEvents:  map[string]int{"*": 0},
			TestAppFactory:  env.factory,
		},
		{
			Name:           "session of a deleted account is cleared",
			Method:         http.MethodGet,
			URL:            "/admin/services",
			Headers:        map[string]string{"Cookie": sessionCookie(t, &domain.Session{ID: "gone", Role: domain.RoleSuperadmin})},
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc:  expectRedirect("/login"),
		},
	}

	for _, scenario := range scenarios {
		scenario.Test(t)
	}
}

func TestAdminContent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	cookie := map[string]string{
		"Cookie":       sessionCookie(t, service.DefaultSession()),
		"Content-Type": "application/x-www-form-urlencoded",
	}
	services := repository.NewServiceRepo(env.store, zap.NewNop())

	scenarios := []tests.ApiScenario{
		{
			Name:   "invalid service is re-rendered with errors",
			Method: http.MethodPost,
			URL:    "/admin/services",
			Body: formBody(url.Values{
				"title": {"Dry Needling"},
				"order": {"first"},
			}),
			Headers:         cookie,
			ExpectedStatus:  http.StatusUnprocessableEntity,
			ExpectedContent: []string{"Short description is required", "Order must be a whole number"},
			ExpectedEvents:  map[string]int{"*": 0},
			TestAppFactory:  env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, _ *http.Response) {
				assert.Empty(t, services.GetAll(ctx))
			},
		},
		{
			Name:   "create service",
			Method: http.MethodPost,
			URL:    "/admin/services",
			Body: formBody(url.Values{
				"title":            {"Dry Needling"},
				"shortDescription": {"Targeted trigger point release."},
				"benefits":         {"Less pain\nBetter range"},
				"iconName":         {"activity"},
				"order":            {"7"},
			}),
			Headers:        cookie,
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, res *http.Response) {
				assert.True(t, strings.HasPrefix(res.Header.Get("Location"), "/admin/services?success="))

				svc := services.GetBySlug(ctx, "dry-needling")
				require.NotNil(t, svc)
				assert.Equal(t, 7, svc.Order)
				assert.Equal(t, []string{"Less pain", "Better range"}, svc.Benefits)
			},
		},
		{
			Name:   "duplicate slug saves with a warning",
			Method: http.MethodPost,
			URL:    "/admin/services",
			Body: formBody(url.Values{
				"title":            {"Dry Needling"},
				"shortDescription": {"Second entry."},
			}),
			Headers:        cookie,
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, res *http.Response) {
				assert.True(t, strings.HasPrefix(res.Header.Get("Location"), "/admin/services?warning="))
				assert.Len(t, services.GetAll(ctx), 2)
			},
		},
		{
			Name:           "import built-in testimonials",
			Method:         http.MethodPost,
			URL:            "/admin/testimonials/import",
			Headers:        cookie,
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, res *http.Response) {
				assert.True(t, strings.HasPrefix(res.Header.Get("Location"), "/admin/testimonials?success="))
				testimonials := repository.NewTestimonialRepo(env.store, zap.NewNop())
				assert.NotEmpty(t, testimonials.GetAll(ctx))
			},
		},
		{
			Name:   "settings validation",
			Method: http.MethodPost,
			URL:    "/admin/settings",
			Body: formBody(url.Values{
				"clinicName": {""},
				"email":      {"not-an-email"},
			}),
			Headers:         cookie,
			ExpectedStatus:  http.StatusUnprocessableEntity,
			ExpectedContent: []string{"Clinic name is required"},
			ExpectedEvents:  map[string]int{"*": 0},
			TestAppFactory:  env.factory,
		},
		{
			Name:   "saved settings reach the public site",
			Method: http.MethodPost,
			URL:    "/admin/settings",
			Body: formBody(url.Values{
				"clinicName": {"Harbour Physio"},
				"tagline":    {"Back on your feet"},
			}),
			Headers:        cookie,
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, _ *http.Response) {
				settings := repository.NewSettingsRepo(env.store, zap.NewNop()).Get(ctx)
				require.NotNil(t, settings)
				assert.Equal(t, "Harbour Physio", settings.ClinicName)
			},
		},
		{
			Name:            "public pages use the saved settings",
			Method:          http.MethodGet,
			URL:             "/contact",
			ExpectedStatus:  http.StatusOK,
			ExpectedContent: []string{"Harbour Physio"},
			ExpectedEvents:  map[string]int{"*": 0},
			TestAppFactory:  env.factory,
		},
	}

	for _, scenario := range scenarios {
		scenario.Test(t)
	}
}

func TestAdminServiceImageUpload(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	services := repository.NewServiceRepo(env.store, zap.NewNop())

	const seeded = "data:image/png;base64,iVBORw0KGgo="
	id, err := services.Add(ctx, domain.Service{
		Title:            "Dry Needling",
		Slug:             "dry-needling",
		ShortDescription: "Targeted trigger point release.",
		IconName:         "activity",
		ImageURL:         seeded,
	})
	require.NoError(t, err)

	fields := url.Values{
		"title":            {"Dry Needling"},
		"slug":             {"dry-needling"},
		"shortDescription": {"Targeted trigger point release."},
		"iconName":         {"activity"},
	}
	cookie := sessionCookie(t, service.DefaultSession())
	tooLarge, tooLargeType := multipartBody(t, fields, pngOfSize(900*1024))
	fits, fitsType := multipartBody(t, fields, pngOfSize(650*1024))

	scenarios := []tests.ApiScenario{
		{
			Name:            "900KB image is refused and the stored image kept",
			Method:          http.MethodPost,
			URL:             "/admin/services/" + id,
			Body:            tooLarge,
			Headers:         map[string]string{"Cookie": cookie, "Content-Type": tooLargeType},
			ExpectedStatus:  http.StatusUnprocessableEntity,
			ExpectedContent: []string{"Image must be 700KB or smaller"},
			ExpectedEvents:  map[string]int{"*": 0},
			TestAppFactory:  env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, _ *http.Response) {
				svc := services.GetByID(ctx, id)
				require.NotNil(t, svc)
				assert.Equal(t, seeded, svc.ImageURL)
			},
		},
		{
			Name:           "650KB image is stored as a data URI",
			Method:         http.MethodPost,
			URL:            "/admin/services/" + id,
			Body:           fits,
			Headers:        map[string]string{"Cookie": cookie, "Content-Type": fitsType},
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, res *http.Response) {
				assert.Equal(t, "/admin/services?success=Service+saved", res.Header.Get("Location"))
				svc := services.GetByID(ctx, id)
				require.NotNil(t, svc)
				assert.True(t, strings.HasPrefix(svc.ImageURL, "data:image/png;base64,"))
				assert.NotEqual(t, seeded, svc.ImageURL)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Test(t)
	}
}

func TestAdminAppointments(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	cookie := map[string]string{
		"Cookie":       sessionCookie(t, service.DefaultSession()),
		"Content-Type": "application/x-www-form-urlencoded",
	}

	id, err := env.appointments().Add(ctx, domain.Appointment{
		Name:    "Sam",
		Email:   "sam@example.com",
		Phone:   "5550102030",
		Service: "Sports Injury Rehabilitation",
		Date:    "2026-11-03",
		Time:    "09:00",
		Status:  domain.StatusPending,
	})
	require.NoError(t, err)

	scenarios := []tests.ApiScenario{
		{
			Name:            "list filtered by status",
			Method:          http.MethodGet,
			URL:             "/admin/appointments?status=pending",
			Headers:         cookie,
			ExpectedStatus:  http.StatusOK,
			ExpectedContent: []string{"sam@example.com"},
			ExpectedEvents:  map[string]int{"*": 0},
			TestAppFactory:  env.factory,
		},
		{
			Name:           "unknown status is refused",
			Method:         http.MethodPost,
			URL:            "/admin/appointments/" + id + "/status",
			Body:           formBody(url.Values{"status": {"archived"}}),
			Headers:        cookie,
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, _ *http.Response) {
				assert.Equal(t, domain.StatusPending, env.appointments().GetByID(ctx, id).Status)
			},
		},
		{
			Name:           "status change",
			Method:         http.MethodPost,
			URL:            "/admin/appointments/" + id + "/status",
			Body:           formBody(url.Values{"status": {domain.StatusConfirmed}}),
			Headers:        cookie,
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, _ *http.Response) {
				assert.Equal(t, domain.StatusConfirmed, env.appointments().GetByID(ctx, id).Status)
			},
		},
		{
			Name:           "status change keeps a known filter",
			Method:         http.MethodPost,
			URL:            "/admin/appointments/" + id + "/status?status=confirmed",
			Body:           formBody(url.Values{"status": {domain.StatusCompleted}}),
			Headers:        cookie,
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc:  expectRedirect("/admin/appointments?status=confirmed&success=Appointment+marked+completed"),
		},
		{
			Name:           "status change drops an unknown filter",
			Method:         http.MethodPost,
			URL:            "/admin/appointments/" + id + "/status?status=" + url.QueryEscape("pending&success=Appointment deleted"),
			Body:           formBody(url.Values{"status": {domain.StatusCancelled}}),
			Headers:        cookie,
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc:  expectRedirect("/admin/appointments?success=Appointment+marked+cancelled"),
		},
		{
			Name:           "export",
			Method:         http.MethodGet,
			URL:            "/admin/appointments/export",
			Headers:        cookie,
			ExpectedStatus: http.StatusOK,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, res *http.Response) {
				assert.Contains(t, res.Header.Get("Content-Type"), "spreadsheetml")
				assert.Contains(t, res.Header.Get("Content-Disposition"), "appointments-")
			},
		},
		{
			Name:           "delete",
			Method:         http.MethodPost,
			URL:            "/admin/appointments/" + id + "/delete",
			Headers:        cookie,
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, _ *http.Response) {
				assert.Nil(t, env.appointments().GetByID(ctx, id))
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Test(t)
	}
}

func TestAdminUsers(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	ownerID, err := env.users().Add(ctx, domain.AdminUser{
		Email:    "owner@example.com",
		Password: "secret1",
		Name:     "Owner",
		Role:     domain.RoleSuperadmin,
	})
	require.NoError(t, err)
	owner := &domain.Session{ID: ownerID, Email: "owner@example.com", Name: "Owner", Role: domain.RoleSuperadmin, AllowedPages: []string{}}

	headers := map[string]string{
		"Cookie":       sessionCookie(t, owner),
		"Content-Type": "application/x-www-form-urlencoded",
	}

	scenarios := []tests.ApiScenario{
		{
			Name:   "create user",
			Method: http.MethodPost,
			URL:    "/admin/users",
			Body: formBody(url.Values{
				"email":        {"front@example.com"},
				"name":         {"Front Desk"},
				"password":     {"desk123"},
				"role":         {domain.RoleAdmin},
				"allowedPages": {domain.PageAppointments, "bogus"},
			}),
			Headers:        headers,
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, _ *http.Response) {
				u := env.users().GetByEmail(ctx, "front@example.com")
				require.NotNil(t, u)
				assert.Equal(t, []string{domain.PageAppointments}, u.AllowedPages)
				assert.Equal(t, "desk123", u.Password)
			},
		},
		{
			Name:           "cannot delete yourself",
			Method:         http.MethodPost,
			URL:            "/admin/users/" + ownerID + "/delete",
			Headers:        headers,
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, res *http.Response) {
				assert.True(t, strings.HasPrefix(res.Header.Get("Location"), "/admin/users?error="))
				assert.NotNil(t, env.users().GetByID(ctx, ownerID))
			},
		},
		{
			Name:   "edit without password keeps the stored one",
			Method: http.MethodPost,
			URL:    "/admin/users/" + ownerID,
			Body: formBody(url.Values{
				"email": {"owner@example.com"},
				"name":  {"Clinic Owner"},
				"role":  {domain.RoleSuperadmin},
			}),
			Headers:        headers,
			ExpectedStatus: http.StatusSeeOther,
			ExpectedEvents: map[string]int{"*": 0},
			TestAppFactory: env.factory,
			AfterTestFunc: func(t testing.TB, _ *tests.TestApp, _ *http.Response) {
				u := env.users().GetByID(ctx, ownerID)
				require.NotNil(t, u)
				assert.Equal(t, "Clinic Owner", u.Name)
				assert.Equal(t, "secret1", u.Password)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Test(t)
	}
}
