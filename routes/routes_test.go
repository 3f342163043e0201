package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dive-booking/catalog"
	"dive-booking/config"
	"dive-booking/controllers"
	"dive-booking/schedule"
	"dive-booking/services"
	"dive-booking/wizard"
)

// 2026-10-18 is a Sunday.
var today = civil.Date{Year: 2026, Month: time.October, Day: 18}

type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cat := catalog.Default()
	rules := schedule.FixedRules(today)
	bookings := services.NewBookingService(services.NewMemoryBookingStore(), cat, rules, nil, zap.NewNop())
	wiz := services.NewWizardService(wizard.NewMemorySessionStore(time.Hour), bookings)
	return SetupRouter(config.Config{}, zap.NewNop(),
		controllers.NewBookingController(bookings),
		controllers.NewWizardController(wiz),
		controllers.NewCatalogController(cat, rules),
	)
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

const resortBody = `{
	"tripType": "resort-only",
	"resortArrivalDate": "2026-10-19",
	"resortDepartureDate": "2026-10-26",
	"accommodationId": "ocean-bungalow",
	"adults": 2,
	"visitCount": "first",
	"activityId": "unlimited-dive",
	"activityDays": {"adult-1": 6, "adult-2": {"days": 4}},
	"firstName": "Ana",
	"lastName": "Reyes",
	"email": "ana@example.com",
	"phone": "+63 912 345"
}`

func TestHealth(t *testing.T) {
	code, _ := do(t, newRouter(t), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestCatalogAndSteps(t *testing.T) {
	r := newRouter(t)

	code, env := do(t, r, http.MethodGet, "/api/catalog", "")
	require.Equal(t, http.StatusOK, code)
	var cat controllers.CatalogResponse
	require.NoError(t, json.Unmarshal(env.Data, &cat))
	assert.Len(t, cat.Accommodations, 4)
	assert.Equal(t, int64(900), cat.FlightPrice)

	code, env = do(t, r, http.MethodGet, "/api/steps?tripType=combination-stay&combinationOrder=resort-first", "")
	require.Equal(t, http.StatusOK, code)
	var steps struct {
		Steps    []controllers.StepView `json:"steps"`
		FirstLeg string                 `json:"firstLeg"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &steps))
	assert.Len(t, steps.Steps, 8)
	assert.Equal(t, "resort", steps.FirstLeg)
}

func TestSchedule(t *testing.T) {
	r := newRouter(t)

	code, env := do(t, r, http.MethodGet, "/api/schedule/pelagian/suggest?arrival=2026-10-19", "")
	require.Equal(t, http.StatusOK, code)
	var suggestion struct {
		Departure    string `json:"departure"`
		ArrivalValid bool   `json:"arrivalValid"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &suggestion))
	assert.Equal(t, "2026-10-26", suggestion.Departure)
	assert.True(t, suggestion.ArrivalValid)

	code, _ = do(t, r, http.MethodGet, "/api/schedule/ferry/suggest?arrival=2026-10-19", "")
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = do(t, r, http.MethodGet, "/api/schedule/resort/suggest?arrival=tomorrow", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = do(t, r, http.MethodPost, "/api/schedule/liveaboard/validate", `{"arrival":"2026-10-19","departure":"2026-10-23"}`)
	require.Equal(t, http.StatusOK, code)
	var result struct {
		Valid  bool              `json:"valid"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.False(t, result.Valid)
	assert.Equal(t, "Liveaboard departures are only possible on Mondays", result.Fields["departure"])
}

func TestQuoteEndpoint(t *testing.T) {
	r := newRouter(t)
	code, env := do(t, r, http.MethodPost, "/api/quotes", resortBody)
	require.Equal(t, http.StatusOK, code, env.Error)

	var q struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &q))
	assert.Equal(t, int64(1161000), q.Total)
}

func TestBookingLifecycle(t *testing.T) {
	r := newRouter(t)

	code, env := do(t, r, http.MethodPost, "/api/bookings", resortBody)
	require.Equal(t, http.StatusCreated, code, env.Error)
	var created struct {
		Booking struct {
			ID           uint            `json:"id"`
			TotalPrice   int64           `json:"totalPrice"`
			ArrivalDate  string          `json:"arrivalDate"`
			ActivityDays json.RawMessage `json:"activityDays"`
		} `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, uint(1), created.Booking.ID)
	assert.Equal(t, int64(1161000), created.Booking.TotalPrice)
	assert.Equal(t, "2026-10-19", created.Booking.ArrivalDate)
	assert.JSONEq(t, `{"adult-1":{"days":6},"adult-2":{"days":4}}`, string(created.Booking.ActivityDays))

	code, env = do(t, r, http.MethodGet, "/api/bookings/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"resortDepartureDate":"2026-10-26"`)

	code, env = do(t, r, http.MethodGet, "/api/bookings", "")
	require.Equal(t, http.StatusOK, code)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	code, _ = do(t, r, http.MethodGet, "/api/bookings/42", "")
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = do(t, r, http.MethodGet, "/api/bookings/abc", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCreateBooking_ValidationFailure(t *testing.T) {
	r := newRouter(t)
	code, env := do(t, r, http.MethodPost, "/api/bookings", `{"tripType":"pelagian-only","adults":0}`)
	require.Equal(t, http.StatusUnprocessableEntity, code)
	assert.False(t, env.Success)
	assert.Equal(t, "validation_failed", env.Error)
	assert.Contains(t, env.Fields, "pelagianArrivalDate")
	assert.Contains(t, env.Fields, "pelagianCabinId")
	assert.Contains(t, env.Fields, "adults")
	assert.Contains(t, env.Fields, "email")

	code, _ = do(t, r, http.MethodPost, "/api/bookings", `{"resortArrivalDate":"19/10/2026"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestWizardFlow(t *testing.T) {
	r := newRouter(t)

	code, env := do(t, r, http.MethodPost, "/api/wizard/sessions", "")
	require.Equal(t, http.StatusCreated, code)
	var sess controllers.SessionView
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	require.NotEmpty(t, sess.ID)
	assert.Len(t, sess.Steps, 3)
	base := "/api/wizard/sessions/" + sess.ID

	code, env = do(t, r, http.MethodPut, base+"/draft", resortBody)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	assert.Len(t, sess.Steps, 6)
	require.NotNil(t, sess.Draft.ResortArrivalDate, "the first trip choice keeps the dates sent with it")

	for i := 0; i < 5; i++ {
		code, env = do(t, r, http.MethodPost, base+"/next", "")
		require.Equal(t, http.StatusOK, code, env.Fields)
	}
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	assert.Equal(t, "review", string(sess.Step.ID))
	assert.True(t, sess.IsLast)

	code, env = do(t, r, http.MethodPost, base+"/back", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	assert.Equal(t, "activities", string(sess.Step.ID))

	code, env = do(t, r, http.MethodGet, base+"/quote", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"total":1161000`)

	code, _ = do(t, r, http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusCreated, code)

	code, env = do(t, r, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "wizard session not found", env.Error)
}

func TestWizardNext_GateFailure(t *testing.T) {
	r := newRouter(t)
	_, env := do(t, r, http.MethodPost, "/api/wizard/sessions", "")
	var sess controllers.SessionView
	require.NoError(t, json.Unmarshal(env.Data, &sess))

	code, env := do(t, r, http.MethodPost, "/api/wizard/sessions/"+sess.ID+"/next", "")
	require.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Fields, "tripType")
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	assert.Equal(t, 0, sess.Position)
}
