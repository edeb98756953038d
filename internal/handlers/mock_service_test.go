package handlers

import (
	"context"
	"net/http"
	"time"

	"condition_monitor/internal/condition"
	"condition_monitor/internal/models"
	"condition_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockDevices struct {
	device    models.Device
	summaries []service.DeviceSummary
	err       error

	lastOwner int
	lastUUID  string
	lastInput service.DeviceInput
}

func (m *mockDevices) RegisterDevice(ctx context.Context, ownerID int, in service.DeviceInput) (models.Device, error) {
	m.lastOwner = ownerID
	m.lastInput = in
	return m.device, m.err
}
func (m *mockDevices) GetDevice(ctx context.Context, ownerID int, deviceUUID string) (models.Device, error) {
	m.lastOwner = ownerID
	m.lastUUID = deviceUUID
	return m.device, m.err
}
func (m *mockDevices) ListDevices(ctx context.Context, ownerID int) ([]service.DeviceSummary, error) {
	m.lastOwner = ownerID
	return m.summaries, m.err
}

type mockIngest struct {
	err       error
	calls     int
	lastUUID  string
	lastBatch []models.ConditionRecord
}

func (m *mockIngest) PostConditions(ctx context.Context, deviceUUID string, batch []models.ConditionRecord) error {
	m.calls++
	m.lastUUID = deviceUUID
	m.lastBatch = batch
	return m.err
}

type mockGraph struct {
	buckets []condition.GraphBucket
	err     error
	lastAt  time.Time
}

func (m *mockGraph) DeviceGraph(ctx context.Context, ownerID int, deviceUUID string, at time.Time) ([]condition.GraphBucket, error) {
	m.lastAt = at
	return m.buckets, m.err
}

type mockConditions struct {
	resp      []condition.ConditionSummary
	err       error
	calls     int
	lastQuery service.ConditionQuery
}

func (m *mockConditions) ListConditions(ctx context.Context, ownerID int, deviceUUID string, q service.ConditionQuery) ([]condition.ConditionSummary, error) {
	m.calls++
	m.lastQuery = q
	return m.resp, m.err
}

type mockTrend struct {
	resp  []condition.CategoryTrend
	err   error
	calls int
}

func (m *mockTrend) CurrentTrend(ctx context.Context) ([]condition.CategoryTrend, error) {
	m.calls++
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// authed returns a service whose token parser accepts any token as user 7.
func authed(s *service.Service) *service.Service {
	s.Authorization = &mockAuth{parseID: 7}
	return s
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
