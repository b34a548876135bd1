package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/cache"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/repository/memstore"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/service"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	db     *memstore.DB
	admins *service.AdminService
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := memstore.New()
	logger := zap.NewNop()

	students := service.NewStudentService(db.Students(), logger)
	tutors := service.NewTutorService(db.Tutors(), cache.NopTutorCache{}, logger)
	bookings := service.NewBookingService(db.Students(), db.Tutors(), db.Bookings(), logger)
	admins := service.NewAdminService(db.Admins(), students, tutors, bookings, logger)

	return &testServer{
		db:     db,
		admins: admins,
		router: NewHandlers(admins, students, tutors, bookings, logger).Router(),
	}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if strings.HasPrefix(body, "{") {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

const (
	aliceJSON = `{"username":"alice","password":"p1","email":"a@x.com","ph_no":"111","age":20,"name":"Alice","address":"A St","gender":"F"}`
	bobJSON   = `{"username":"bob","password":"secret","email":"b@x.com","mobileno":"222","tutor_name":"Bob","tutor_location":"B St","gender":"M"}`
)

// seedAliceAndBob регистрирует студента 1 и репетитора 1
func (s *testServer) seedAliceAndBob(t *testing.T) {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/student/register", aliceJSON)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/admin/tutors/add", bobJSON)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func (s *testServer) ensureAdmin(t *testing.T, username, password string) {
	t.Helper()
	_, err := s.admins.EnsureAdmin(context.Background(), username, password)
	require.NoError(t, err)
}
