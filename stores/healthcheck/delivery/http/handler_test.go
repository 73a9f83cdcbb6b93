package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/domain/healthcheck/mocks"
)

type HealthHandlerTestSuite struct {
	suite.Suite
	uc *mocks.HealthCheckUsecase
	e  *echo.Echo
}

func (s *HealthHandlerTestSuite) SetupTest() {
	s.uc = &mocks.HealthCheckUsecase{}
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.From(c.Request().Context()))
			return next(c)
		}
	})
	New(s.e, s.uc)
}

func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}

func (s *HealthHandlerTestSuite) get() (int, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	body := map[string]interface{}{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func (s *HealthHandlerTestSuite) TestHealthy() {
	s.uc.On("Check", mock.Anything).Return(nil).Once()

	code, body := s.get()
	s.Equal(http.StatusOK, code)
	s.Equal("success", body["status"])
	s.Equal(map[string]interface{}{"subgraph": "ok", "cache": "ok"}, body["data"])
	s.uc.AssertExpectations(s.T())
}

func (s *HealthHandlerTestSuite) TestUnhealthy() {
	s.uc.On("Check", mock.Anything).Return(errors.New("subgraph unreachable")).Once()

	code, body := s.get()
	s.Equal(http.StatusServiceUnavailable, code)
	s.Equal("fail", body["status"])
	s.Equal("subgraph unreachable", body["data"])
}
