package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/shuttle-hr/internal/config"
	delivery "github.com/shuttle-hr/internal/delivery/http"
	"github.com/shuttle-hr/internal/delivery/http/handler"
	"github.com/shuttle-hr/internal/domain"
	"github.com/shuttle-hr/internal/domain/repository/mocks"
	"github.com/shuttle-hr/internal/pkg/auth"
	"github.com/shuttle-hr/internal/usecase"
)

const (
	testSecret = "test-secret"
	testIssuer = "shuttle-hr-test"
)

type fakeChecker struct{ err error }

func (f fakeChecker) Health(context.Context) error { return f.err }

type ServerSuite struct {
	suite.Suite

	users       *mocks.MockUserRepository
	stops       *mocks.MockBusStopRepository
	plans       *mocks.MockRoutePlanRepository
	meshes      *mocks.MockCoverageMeshRepository
	assignments *mocks.MockAssignmentRepository
	cache       *mocks.MockCacheRepository
	stream      *mocks.MockStreamRepository

	checkers map[string]handler.HealthChecker
	server   *delivery.Server
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.users = &mocks.MockUserRepository{}
	s.stops = &mocks.MockBusStopRepository{}
	s.plans = &mocks.MockRoutePlanRepository{}
	s.meshes = &mocks.MockCoverageMeshRepository{}
	s.assignments = &mocks.MockAssignmentRepository{}
	s.cache = &mocks.MockCacheRepository{}
	s.stream = &mocks.MockStreamRepository{}
	s.checkers = map[string]handler.HealthChecker{
		"postgres": fakeChecker{},
		"redis":    fakeChecker{},
	}
	s.server = s.newServer()
}

func (s *ServerSuite) TearDownTest() {
	s.users.AssertExpectations(s.T())
	s.stops.AssertExpectations(s.T())
	s.plans.AssertExpectations(s.T())
	s.cache.AssertExpectations(s.T())
	s.stream.AssertExpectations(s.T())
}

func (s *ServerSuite) newServer() *delivery.Server {
	logger := zap.NewNop()

	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = "*"
	cfg.Upload.MaxBytes = 1 << 20

	active := usecase.NewActiveData(s.stops, s.plans, s.cache, time.Minute, time.Minute, logger)
	notifier := usecase.NewRecomputeNotifier(s.stream, logger)

	mapUC := usecase.NewMapUseCase(s.users, s.meshes, s.assignments, active, 100, 500, logger)
	userUC := usecase.NewUserUseCase(s.users, notifier, logger)
	busStopUC := usecase.NewBusStopUseCase(s.stops, active, notifier, logger)
	coverageUC := usecase.NewCoverageUseCase(s.meshes, notifier, logger)
	routePlanUC := usecase.NewRoutePlanUseCase(s.plans, active, logger)
	dataUC := usecase.NewDataManagementUseCase(s.users, s.stops, s.meshes, s.plans, s.assignments, notifier, logger)

	return delivery.NewServer(
		cfg,
		logger,
		auth.NewVerifier(testSecret, testIssuer),
		handler.NewHealthHandler(s.checkers, logger),
		handler.NewMapHandler(mapUC, logger),
		handler.NewUserHandler(userUC, logger),
		handler.NewBusStopHandler(busStopUC, logger),
		handler.NewCoverageHandler(coverageUC, logger),
		handler.NewRoutePlanHandler(routePlanUC, logger),
		handler.NewDataManagementHandler(dataUC, busStopUC, coverageUC, routePlanUC, int64(cfg.Upload.MaxBytes), logger),
	)
}

func token(t require.TestingT, userID int64, role string) string {
	claims := auth.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (s *ServerSuite) do(req *http.Request) (int, map[string]interface{}) {
	resp, err := s.server.App().Test(req, -1)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var body map[string]interface{}
	if len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, &body), string(raw))
	}
	return resp.StatusCode, body
}

func (s *ServerSuite) get(path string, userID int64, role string) (int, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userID > 0 {
		req.Header.Set("Authorization", "Bearer "+token(s.T(), userID, role))
	}
	return s.do(req)
}

func (s *ServerSuite) upload(path, filename, content string, fields map[string]string, userID int64, role string) (int, map[string]interface{}) {
	return s.uploadAs(path, "file", filename, content, fields, userID, role)
}

func (s *ServerSuite) uploadAs(path, field, filename, content string, fields map[string]string, userID int64, role string) (int, map[string]interface{}) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		s.Require().NoError(w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile(field, filename)
		s.Require().NoError(err)
		_, err = part.Write([]byte(content))
		s.Require().NoError(err)
	}
	s.Require().NoError(w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token(s.T(), userID, role))
	return s.do(req)
}

func errorCode(body map[string]interface{}) string {
	e, _ := body["error"].(map[string]interface{})
	code, _ := e["code"].(string)
	return code
}

func data(body map[string]interface{}) map[string]interface{} {
	d, _ := body["data"].(map[string]interface{})
	return d
}

func (s *ServerSuite) TestHealth() {
	status, body := s.get("/api/v1/health", 0, "")

	s.Equal(http.StatusOK, status)
	s.Equal("healthy", body["status"])
}

func (s *ServerSuite) TestHealth_DependencyDown() {
	s.checkers["redis"] = fakeChecker{err: stderrors.New("connection refused")}
	s.server = s.newServer()

	status, body := s.get("/api/v1/health", 0, "")

	s.Equal(http.StatusServiceUnavailable, status)
	s.Equal("unhealthy", body["status"])
	services := body["services"].(map[string]interface{})
	s.Equal("unhealthy", services["redis"])
	s.Equal("healthy", services["postgres"])
}

func (s *ServerSuite) TestUnknownRoute() {
	status, body := s.get("/nope", 0, "")

	s.Equal(http.StatusNotFound, status)
	s.Equal("NOT_FOUND", errorCode(body))
}

func (s *ServerSuite) TestAuth_MissingToken() {
	status, body := s.get("/api/v1/me", 0, "")

	s.Equal(http.StatusUnauthorized, status)
	s.Equal("UNAUTHORIZED", errorCode(body))
}

func (s *ServerSuite) TestAuth_BadSignature() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	claims := auth.Claims{UserID: 1, Role: domain.RoleEmployee, RegisteredClaims: jwt.RegisteredClaims{Issuer: testIssuer}}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
	s.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+forged)

	status, _ := s.do(req)

	s.Equal(http.StatusUnauthorized, status)
}

func (s *ServerSuite) TestProtected() {
	status, body := s.get("/api/v1/protected", 7, "employee")

	s.Equal(http.StatusOK, status)
	s.Equal(float64(7), data(body)["user_id"])
	s.Equal(domain.RoleEmployee, data(body)["role"])
}

func (s *ServerSuite) TestDataManagement_ForbiddenForEmployees() {
	status, body := s.get("/api/v1/data-management/overview", 7, domain.RoleEmployee)

	s.Equal(http.StatusForbidden, status)
	s.Equal("FORBIDDEN", errorCode(body))
}

func (s *ServerSuite) TestNearestStop() {
	s.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{
		ID:        7,
		Latitude:  floatPtr(19.4326),
		Longitude: floatPtr(-99.1332),
	}, nil)
	s.cache.On("GetActiveStops", mock.Anything).Return([]domain.BusStop{
		{ID: 1, StopID: "A", Name: "Far", Latitude: 19.50, Longitude: -99.20, IsActive: true},
		{ID: 2, StopID: "B", Name: "Near", Latitude: 19.4330, Longitude: -99.1330, IsActive: true},
	}, true, nil)

	status, body := s.get("/api/v1/map/stops/nearest", 7, domain.RoleEmployee)

	s.Require().Equal(http.StatusOK, status)
	stop := data(body)["stop"].(map[string]interface{})
	s.Equal("B", stop["stop_id"])
	s.Less(data(body)["distance_m"].(float64), 100.0)
}

func (s *ServerSuite) TestNearestStop_NoLocation() {
	s.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)

	status, body := s.get("/api/v1/map/stops/nearest", 7, domain.RoleEmployee)

	s.Equal(http.StatusNotFound, status)
	s.Equal("NO_LOCATION", errorCode(body))
}

func (s *ServerSuite) TestNearbyStops_InvalidLimit() {
	for _, limit := range []string{"-3", "0", "abc"} {
		status, body := s.get("/api/v1/map/stops/nearby?limit="+limit, 7, domain.RoleEmployee)

		s.Equal(http.StatusBadRequest, status, "limit=%s", limit)
		s.Equal("INVALID_REQUEST", errorCode(body), "limit=%s", limit)
	}
}

func (s *ServerSuite) TestNearbyStops_DefaultLimit() {
	s.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	s.cache.On("GetActiveStops", mock.Anything).Return([]domain.BusStop{
		{ID: 1, StopID: "A", Latitude: 1, Longitude: 1, IsActive: true},
		{ID: 2, StopID: "B", Latitude: 2, Longitude: 2, IsActive: true},
	}, true, nil)

	status, body := s.get("/api/v1/map/stops/nearby", 7, domain.RoleEmployee)

	s.Require().Equal(http.StatusOK, status)
	s.Len(body["data"], 2)
}

func (s *ServerSuite) TestEmployeeRoutes_NoActivePlan() {
	s.cache.On("GetActivePlan", mock.Anything).Return(nil, false, nil)
	s.cache.On("ActivePlanGeneration", mock.Anything).Return(int64(0), nil)
	s.plans.On("GetActive", mock.Anything).Return(nil, nil)

	status, body := s.get("/api/v1/map/routes/employee", 7, domain.RoleEmployee)

	s.Require().Equal(http.StatusOK, status)
	s.Equal([]interface{}{}, data(body)["routes"])
}

func (s *ServerSuite) TestActiveRoutePlan_NoContent() {
	s.cache.On("GetActivePlan", mock.Anything).Return(nil, false, nil)
	s.cache.On("ActivePlanGeneration", mock.Anything).Return(int64(0), nil)
	s.plans.On("GetActive", mock.Anything).Return(nil, nil)

	status, body := s.get("/api/v1/route-plans/active", 7, domain.RoleEmployee)

	s.Equal(http.StatusNoContent, status)
	s.Nil(body)
}

func (s *ServerSuite) TestUsers_EmployeeCannotReadOthers() {
	status, _ := s.get("/api/v1/users/8", 7, domain.RoleEmployee)

	s.Equal(http.StatusForbidden, status)
}

func (s *ServerSuite) TestUsers_InvalidID() {
	status, body := s.get("/api/v1/users/abc", 7, domain.RoleHRAdmin)

	s.Equal(http.StatusBadRequest, status)
	s.Equal("INVALID_REQUEST", errorCode(body))
}

func (s *ServerSuite) TestUsers_MeRoutesBeforeID() {
	s.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Username: "jdoe"}, nil)

	status, body := s.get("/api/v1/users/me", 7, domain.RoleEmployee)

	s.Require().Equal(http.StatusOK, status)
	s.Equal("jdoe", data(body)["username"])
	s.NotContains(data(body), "password_hash")
}

func (s *ServerSuite) TestUploadBusStops() {
	csv := "stop_id,name,latitude,longitude\nS1,Centro,19.43,-99.13\nS2,Norte,19.50,-99.14\n"
	s.stops.On("ReplaceAll", mock.Anything, mock.MatchedBy(func(stops []domain.BusStop) bool {
		return len(stops) == 2 && stops[0].StopID == "S1"
	})).Return(2, nil)
	s.cache.On("InvalidateActiveStops", mock.Anything).Return(nil)
	s.stream.On("PublishToStream", mock.Anything, domain.StreamAssignmentsRecompute, mock.Anything).Return(nil)

	status, body := s.upload("/api/v1/data-management/bus-stops/upload", "stops.csv", csv, nil, 1, domain.RoleHRAdmin)

	s.Require().Equal(http.StatusOK, status)
	s.Equal(float64(2), data(body)["count"])
}

func (s *ServerSuite) TestUploadBusStops_EndpointFieldName() {
	csv := "stop_id,name,latitude,longitude\nS1,Centro,19.43,-99.13\n"
	s.stops.On("ReplaceAll", mock.Anything, mock.Anything).Return(1, nil)
	s.cache.On("InvalidateActiveStops", mock.Anything).Return(nil)
	s.stream.On("PublishToStream", mock.Anything, domain.StreamAssignmentsRecompute, mock.Anything).Return(nil)

	status, body := s.uploadAs("/api/v1/data-management/bus-stops/upload", "bus_stop_file", "stops.csv", csv, nil, 1, domain.RoleHRAdmin)

	s.Require().Equal(http.StatusOK, status)
	s.Equal(float64(1), data(body)["count"])
}

func (s *ServerSuite) TestUploadBusStops_OtherEndpointFieldIgnored() {
	csv := "stop_id,name,latitude,longitude\nS1,Centro,19.43,-99.13\n"

	status, body := s.uploadAs("/api/v1/data-management/bus-stops/upload", "route_file", "stops.csv", csv, nil, 1, domain.RoleHRAdmin)

	s.Equal(http.StatusBadRequest, status)
	s.Equal("MISSING_FILE", errorCode(body))
}

func (s *ServerSuite) TestUploadBusStops_MissingFile() {
	status, body := s.upload("/api/v1/data-management/bus-stops/upload", "", "", map[string]string{"x": "y"}, 1, domain.RoleHRAdmin)

	s.Equal(http.StatusBadRequest, status)
	s.Equal("MISSING_FILE", errorCode(body))
}

func (s *ServerSuite) TestUploadBusStops_InvalidRowsWriteNothing() {
	csv := "stop_id,name,latitude,longitude\nS1,Centro,abc,-99.13\n"

	status, body := s.upload("/api/v1/data-management/bus-stops/upload", "stops.csv", csv, nil, 1, domain.RoleMasterAdmin)

	s.Equal(http.StatusBadRequest, status)
	s.Equal("INVALID_UPLOAD", errorCode(body))
	s.stops.AssertNotCalled(s.T(), "ReplaceAll", mock.Anything, mock.Anything)
}

func (s *ServerSuite) TestDeleteRoute_RequiresID() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/data-management/routes/delete", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token(s.T(), 1, domain.RoleHRAdmin))

	status, body := s.do(req)

	s.Equal(http.StatusBadRequest, status)
	s.Equal("INVALID_REQUEST", errorCode(body))
}

func (s *ServerSuite) TestDeleteCoverageMesh_EmptyBodyDeletesAll() {
	s.meshes.On("DeleteAll", mock.Anything).Return(3, nil)
	s.stream.On("PublishToStream", mock.Anything, domain.StreamAssignmentsRecompute, mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/data-management/coverage-mesh/delete", nil)
	req.Header.Set("Authorization", "Bearer "+token(s.T(), 1, domain.RoleHRAdmin))

	status, body := s.do(req)

	s.Require().Equal(http.StatusOK, status)
	s.Equal(float64(3), data(body)["deleted"])
}

func floatPtr(v float64) *float64 { return &v }
