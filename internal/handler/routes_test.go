package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalmiddleware "github.com/noah-isme/drivingschool-api/internal/middleware"
	"github.com/noah-isme/drivingschool-api/internal/repository"
	"github.com/noah-isme/drivingschool-api/internal/seed"
	"github.com/noah-isme/drivingschool-api/internal/service"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta map[string]interface{} `json:"meta"`
}

func buildRouter(t *testing.T, today string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.Open(seed.Default())
	require.NoError(t, err)
	clock := service.Clock(func() time.Time {
		d, _ := time.Parse("2006-01-02", today)
		return d.Add(9 * time.Hour)
	})
	metrics := service.NewMetricsService()

	data := service.NewDataService(service.DataServiceParams{
		Students:   repository.NewStudentRepository(db),
		Attendance: repository.NewAttendanceRepository(db),
		Schedule:   repository.NewScheduleRepository(db),
		Reference:  repository.NewReferenceRepository(db),
		Metrics:    metrics,
		Validator:  service.NewValidator(),
	})
	students := service.NewStudentService(data, nil)
	schedule := service.NewScheduleService(data, "es-CO", clock, nil)

	r := gin.New()
	r.Use(internalmiddleware.WithResponseMeta(), internalmiddleware.Metrics(metrics))
	RegisterRoutes(r, "/api/v1", Handlers{
		Students:   NewStudentHandler(students, data, schedule),
		Hours:      NewHoursHandler(students, service.NewExportService(students, clock, nil)),
		Attendance: NewAttendanceHandler(service.NewAttendanceService(data, clock, nil), data),
		Schedule:   NewScheduleHandler(schedule, data),
		Fleet:      NewFleetHandler(service.NewFleetService(data, clock, nil)),
		Dashboard:  NewDashboardHandler(service.NewDashboardService(service.DashboardServiceParams{Data: data, Now: clock})),
		Metrics:    NewMetricsHandler(metrics, nil),
	})
	return r
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func TestStudentRoutes(t *testing.T) {
	router := buildRouter(t, "2024-07-17")

	t.Run("list with search", func(t *testing.T) {
		rec := performRequest(router, http.MethodGet, "/api/v1/students?search=ospina", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var students []map[string]interface{}
		env := decode(t, rec, &students)
		require.Len(t, students, 1)
		assert.Equal(t, "6", students[0]["id"])
		assert.Equal(t, "VO", students[0]["initials"])
		assert.EqualValues(t, 1, env.Meta["count"])
	})

	t.Run("invalid status filter", func(t *testing.T) {
		rec := performRequest(router, http.MethodGet, "/api/v1/students?status=expelled", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec, nil)
		assert.Equal(t, "INVALID_ARGUMENT", env.Error.Code)
	})

	t.Run("unknown student", func(t *testing.T) {
		rec := performRequest(router, http.MethodGet, "/api/v1/students/404", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		rec = performRequest(router, http.MethodGet, "/api/v1/students/404/attendance", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("history", func(t *testing.T) {
		rec := performRequest(router, http.MethodGet, "/api/v1/students/1/attendance", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var records []map[string]interface{}
		decode(t, rec, &records)
		require.Len(t, records, 1)
		assert.Equal(t, "2024-07-16", records[0]["date"])

		rec = performRequest(router, http.MethodGet, "/api/v1/students/2/schedule?locale=en", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var entries []map[string]interface{}
		decode(t, rec, &entries)
		require.Len(t, entries, 1)
		assert.Equal(t, "July 17, 2024", entries[0]["display_date"])
	})
}

func TestAttendanceRoutes(t *testing.T) {
	router := buildRouter(t, "2024-07-16")

	rec := performRequest(router, http.MethodPut, "/api/v1/attendance", `{"student_id":"1","date":"2024-07-20","status":"present"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var record map[string]interface{}
	decode(t, rec, &record)
	assert.EqualValues(t, 2, record["hours"])
	assert.Equal(t, "theoretical", record["type"])

	rec = performRequest(router, http.MethodGet, "/api/v1/students/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var student map[string]interface{}
	decode(t, rec, &student)
	assert.EqualValues(t, 20, student["theoretical_hours"])

	rec = performRequest(router, http.MethodPut, "/api/v1/attendance", `{"student_id":"1","date":"2024-07-20","status":"excused"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = performRequest(router, http.MethodPut, "/api/v1/attendance", `{"student_id":"1"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec, nil).Error.Code)

	rec = performRequest(router, http.MethodGet, "/api/v1/attendance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 3, decode(t, rec, nil).Meta["count"])

	rec = performRequest(router, http.MethodGet, "/api/v1/attendance/roster?filter=absent", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 4, decode(t, rec, nil).Meta["count"])

	rec = performRequest(router, http.MethodGet, "/api/v1/attendance/stats?date=2024-07-16", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats map[string]interface{}
	decode(t, rec, &stats)
	assert.EqualValues(t, 2, stats["present"])
	assert.EqualValues(t, 4, stats["absent"])
}

func TestScheduleRoutes(t *testing.T) {
	router := buildRouter(t, "2024-07-17")

	rec := performRequest(router, http.MethodPost, "/api/v1/schedule",
		`{"student_id":"1","date":"2024-07-21","time":"09:00","type":"practical","instructor":"Ana Gómez","vehicle":"Honda CB 125"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]interface{}
	decode(t, rec, &created)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "scheduled", created["status"])

	rec = performRequest(router, http.MethodPatch, "/api/v1/schedule/"+id+"/status", `{"status":"cancelled"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]interface{}
	decode(t, rec, &updated)
	assert.Equal(t, "cancelled", updated["status"])
	assert.Equal(t, "Honda CB 125", updated["vehicle"])

	rec = performRequest(router, http.MethodPatch, "/api/v1/schedule/nonexistent/status", `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = performRequest(router, http.MethodPatch, "/api/v1/schedule/1/status", `{"status":"postponed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = performRequest(router, http.MethodPost, "/api/v1/schedule", `{"student_id":"1","date":"2024-07-21","time":"09:00","type":"simulator","instructor":"Ana Gómez"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = performRequest(router, http.MethodGet, "/api/v1/schedule?type=practical", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var today []map[string]interface{}
	decode(t, rec, &today)
	require.Len(t, today, 2)
	assert.Equal(t, "10:00", today[0]["time"])

	rec = performRequest(router, http.MethodGet, "/api/v1/schedule/week?date=2024-07-21", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var week struct {
		Start string `json:"start"`
		Days  []struct {
			Date    string        `json:"date"`
			Entries []interface{} `json:"entries"`
		} `json:"days"`
	}
	decode(t, rec, &week)
	assert.Equal(t, "2024-07-15", week.Start)
	assert.Len(t, week.Days[2].Entries, 3)
	assert.Len(t, week.Days[6].Entries, 1)
}

func TestHoursRoutes(t *testing.T) {
	router := buildRouter(t, "2024-07-17")

	rec := performRequest(router, http.MethodGet, "/api/v1/hours?sort=name&license=all", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []map[string]interface{}
	decode(t, rec, &rows)
	require.Len(t, rows, 6)
	assert.Equal(t, "4", rows[0]["student_id"])

	rec = performRequest(router, http.MethodGet, "/api/v1/hours/overview", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var overview map[string]interface{}
	decode(t, rec, &overview)
	assert.EqualValues(t, 1, overview["needs_attention"])

	rec = performRequest(router, http.MethodGet, "/api/v1/hours/export?format=csv", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="horas-2024-07-17.csv"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Estudiante,"))

	rec = performRequest(router, http.MethodGet, "/api/v1/hours/export?format=docx", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFleetAndDashboardRoutes(t *testing.T) {
	router := buildRouter(t, "2024-07-17")

	rec := performRequest(router, http.MethodGet, "/api/v1/vehicles?status=available", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 3, decode(t, rec, nil).Meta["count"])

	rec = performRequest(router, http.MethodGet, "/api/v1/vehicles/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats map[string]interface{}
	decode(t, rec, &stats)
	assert.EqualValues(t, 1, stats["in_use"])

	rec = performRequest(router, http.MethodGet, "/api/v1/vehicles/3/upcoming", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec, nil).Meta["count"])

	rec = performRequest(router, http.MethodGet, "/api/v1/vehicles/99/upcoming", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = performRequest(router, http.MethodGet, "/api/v1/instructors?license=A1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec, nil).Meta["count"])

	rec = performRequest(router, http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary map[string]interface{}
	env := decode(t, rec, &summary)
	assert.EqualValues(t, 6, summary["total_students"])
	assert.EqualValues(t, 75, summary["completion_rate"])
	assert.Equal(t, false, env.Meta["cache_hit"])
}

func TestOpsRoutes(t *testing.T) {
	router := buildRouter(t, "2024-07-17")

	rec := performRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	performRequest(router, http.MethodGet, "/api/v1/students", "")
	rec = performRequest(router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `drivingschool_http_requests_total{method="GET",path="/api/v1/students",status="200"} 1`)

	rec = performRequest(router, http.MethodGet, "/ready", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cache":"disabled"`)
}
