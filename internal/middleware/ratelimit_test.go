package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/NominaCol/payroll_automation_app/internal/middleware"
)

type RateLimitTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *RateLimitTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	rate, err := limiter.NewRateFromFormatted("2-H")
	suite.Require().NoError(err)

	suite.router = gin.New()
	suite.router.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))
	suite.router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func (suite *RateLimitTestSuite) get() *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RateLimitTestSuite) TestUnderLimitPassesWithHeaders() {
	w := suite.get()

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("2", w.Header().Get("X-RateLimit-Limit"))
	suite.Equal("1", w.Header().Get("X-RateLimit-Remaining"))
}

func (suite *RateLimitTestSuite) TestOverLimitRejected() {
	suite.get()
	suite.get()
	w := suite.get()

	suite.Equal(http.StatusTooManyRequests, w.Code)
}

func TestRateLimitTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimitTestSuite))
}
