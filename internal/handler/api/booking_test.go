//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"courtbook/internal/domain/pricing"
	"courtbook/internal/handler/api"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"
	"courtbook/tests/common/builder"
	"courtbook/tests/common/httptest"
	"courtbook/tests/common/testutil"
	commandsmock "courtbook/tests/mock/commands"
	queriesmock "courtbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)

	ist := time.FixedZone("IST", 5*3600+1800)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, ist)

	// Mock identity middleware for testing
	identityMiddleware := func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User identity required"})
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identity"})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}

	s.router.POST("/bookings", identityMiddleware, s.handler.CreateBooking)
	s.router.POST("/bookings/check", s.handler.CheckAvailability)
	s.router.POST("/bookings/quote", s.handler.PreviewPrice)
	s.router.GET("/bookings", s.handler.ListBookings)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	userID := uuid.New().String()

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, userID)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resdto.BookingResponse{})
	})

	s.Run("error: missing identity returns 401", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "User identity required")
	})

	validation := []testCaseBooking{
		{name: "missing court_id", mutate: testutil.Field("court_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing start_time", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
		{name: "missing end_time", mutate: testutil.Field("end_time", nil), expectCode: http.StatusBadRequest},
		{name: "unparsable start_time", mutate: testutil.Field("start_time", "not-a-time"), expectCode: http.StatusBadRequest, expectInBody: "Invalid timestamp format"},
	}
	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, userID)
			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectInBody)
		})
	}

	domainErrors := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "invalid window", err: commands.ErrInvalidWindow, expectCode: http.StatusBadRequest},
		{name: "court not found", err: commands.ErrCourtNotFound, expectCode: http.StatusNotFound},
		{name: "coach not found", err: commands.ErrCoachNotFound, expectCode: http.StatusNotFound},
		{name: "slot conflict", err: commands.ErrSlotConflict, expectCode: http.StatusConflict},
		{name: "transient failure", err: commands.ErrTransientFailure, expectCode: http.StatusServiceUnavailable},
		{name: "domain validation", err: commands.ErrDomainValidation, expectCode: http.StatusUnprocessableEntity},
	}
	for _, tc := range domainErrors {
		s.Run("error mapping: "+tc.name, func() {
			s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err).Times(1)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, userID)
			s.Equal(tc.expectCode, w.Code, w.Body.String())
		})
	}
}

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckAvailability() {
	url := "/bookings/check"
	reqBody := builder.NewBookingBuilder().BuildCheckRequestDTO()

	s.Run("success: reports available slot", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), reqBody.CourtID, gomock.Any(), gomock.Any()).
			Return(true, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.True(res.Available)
	})

	s.Run("success: reports occupied slot", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), reqBody.CourtID, gomock.Any(), gomock.Any()).
			Return(false, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.False(res.Available)
	})

	s.Run("error: inverted window maps to 400", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, queries.ErrInvalidWindow).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "End time must be after start time")
	})
}

// ================================================================================
// TestPreviewPrice
// ================================================================================

func (s *BookingHandlerTestSuite) TestPreviewPrice() {
	url := "/bookings/quote"
	reqBody := builder.NewBookingBuilder().BuildQuoteRequestDTO()

	s.Run("success: returns itemized quote", func() {
		quote := &pricing.Quote{CourtFee: 300, Total: 300}
		s.mockQueries.EXPECT().PreviewPrice(gomock.Any(), gomock.Any()).
			Return(quote, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		var res resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(int64(300), res.Total)
	})

	s.Run("error: unknown court maps to 404", func() {
		s.mockQueries.EXPECT().PreviewPrice(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrCourtNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Court not found")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns booking by id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+returnView.ID.String(), nil, "")
		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(returnView.ID, res.ID)
	})

	s.Run("error: malformed id returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: unknown id returns 404", func() {
		missing := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), missing).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+missing.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: returns bookings for the day", func() {
		item := builder.NewBookingBuilder().BuildListItem()
		s.mockQueries.EXPECT().ListByDay(gomock.Any(), gomock.Any()).
			Return([]*queries.BookingListItem{item}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?date=2026-03-09", nil, "")
		var res []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Len(res, 1)
	})

	s.Run("error: missing date returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "date query parameter is required")
	})

	s.Run("error: malformed date returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?date=03-09-2026", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid date format")
	})
}
