//go:build unit

package queries_test

import (
	"errors"
	"testing"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/infra"
	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"
	queriesmock "courtbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var ist = time.FixedZone("IST", 5*3600+1800)

type BookingQueriesTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockStore      *queriesmock.MockBookingReadStore
	mockCourts     *queriesmock.MockCourtReader
	mockCoaches    *queriesmock.MockCoachReader
	mockEquipment  *queriesmock.MockEquipmentReader
	mockRules      *queriesmock.MockPricingRuleReader
	bookingQueries queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.mockCourts = queriesmock.NewMockCourtReader(s.mockCtrl)
	s.mockCoaches = queriesmock.NewMockCoachReader(s.mockCtrl)
	s.mockEquipment = queriesmock.NewMockEquipmentReader(s.mockCtrl)
	s.mockRules = queriesmock.NewMockPricingRuleReader(s.mockCtrl)

	s.bookingQueries = queries.NewBookingQueries(
		s.mockStore,
		s.mockCourts,
		s.mockCoaches,
		s.mockEquipment,
		s.mockRules,
		booking.NewFactory(ist),
		ist,
	)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func notFoundErr() error {
	return infra.WrapRepoErr("row lookup", errors.New("no rows in result set"), infra.KindNotFound)
}

// Monday 2030-03-04 at the given hour, facility local time.
func istTime(hour int) time.Time {
	return time.Date(2030, 3, 4, hour, 0, 0, 0, ist)
}

func courtSnap(id uuid.UUID, baseRate float64, active bool) *shared.CourtSnapshot {
	return &shared.CourtSnapshot{ID: id, Name: "Court 1", CourtType: "indoor", BaseRate: baseRate, IsActive: active}
}

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *BookingQueriesTestSuite) TestCheckAvailability() {
	courtID := uuid.New()

	s.Run("free slot is available", func() {
		s.mockStore.EXPECT().HasOverlap(gomock.Any(), courtID, istTime(10), istTime(11)).
			Return(false, nil).Times(1)

		available, err := s.bookingQueries.CheckAvailability(s.T().Context(), courtID, istTime(10), istTime(11))
		require.NoError(s.T(), err)
		require.True(s.T(), available)
	})

	s.Run("occupied slot is unavailable", func() {
		s.mockStore.EXPECT().HasOverlap(gomock.Any(), courtID, gomock.Any(), gomock.Any()).
			Return(true, nil).Times(1)

		available, err := s.bookingQueries.CheckAvailability(s.T().Context(), courtID, istTime(10), istTime(11))
		require.NoError(s.T(), err)
		require.False(s.T(), available)
	})

	s.Run("inverted window fails before the store is consulted", func() {
		_, err := s.bookingQueries.CheckAvailability(s.T().Context(), courtID, istTime(11), istTime(10))
		require.ErrorIs(s.T(), err, queries.ErrInvalidWindow)
	})

	s.Run("zero-length window is rejected", func() {
		_, err := s.bookingQueries.CheckAvailability(s.T().Context(), courtID, istTime(10), istTime(10))
		require.ErrorIs(s.T(), err, queries.ErrInvalidWindow)
	})
}

// ================================================================================
// TestPreviewPrice
// ================================================================================

func (s *BookingQueriesTestSuite) TestPreviewPrice() {
	courtID := uuid.New()

	s.Run("base rate with no matching rules", func() {
		s.mockCourts.EXPECT().FindByID(gomock.Any(), courtID).
			Return(courtSnap(courtID, 200, true), nil).Times(1)
		s.mockRules.EXPECT().ListOrdered(gomock.Any()).
			Return(nil, nil).Times(1)

		quote, err := s.bookingQueries.PreviewPrice(s.T().Context(), queries.PreviewPriceParams{
			CourtID: courtID,
			Start:   istTime(10),
			End:     istTime(12),
		})
		require.NoError(s.T(), err)
		require.Equal(s.T(), float64(400), quote.CourtFee)
		require.Empty(s.T(), quote.Modifiers)
		require.Equal(s.T(), int64(400), quote.Total)
	})

	s.Run("rules compound sequentially in priority order", func() {
		s.mockCourts.EXPECT().FindByID(gomock.Any(), courtID).
			Return(courtSnap(courtID, 100, true), nil).Times(1)
		// (100*1.5 + 0)*1.0 + 20 = 170 per hour for a one-hour window.
		s.mockRules.EXPECT().ListOrdered(gomock.Any()).
			Return([]*shared.RuleSnapshot{
				{ID: uuid.New(), Name: "Peak Hours", Kind: "peak_hour", Multiplier: 1.5, StartHour: 18, EndHour: 21, Priority: 1},
				{ID: uuid.New(), Name: "Holiday Surcharge", Kind: "holiday", Multiplier: 1.0, Addition: 20, Days: []int{1}, Priority: 2},
			}, nil).Times(1)

		quote, err := s.bookingQueries.PreviewPrice(s.T().Context(), queries.PreviewPriceParams{
			CourtID: courtID,
			Start:   istTime(18),
			End:     istTime(19),
		})
		require.NoError(s.T(), err)
		require.Equal(s.T(), float64(170), quote.CourtFee)
		require.Len(s.T(), quote.Modifiers, 2)
		require.Equal(s.T(), int64(170), quote.Total)
	})

	s.Run("coach fee stays flat, outside the multipliers", func() {
		coachID := uuid.New()
		s.mockCourts.EXPECT().FindByID(gomock.Any(), courtID).
			Return(courtSnap(courtID, 200, true), nil).Times(1)
		s.mockCoaches.EXPECT().FindByID(gomock.Any(), coachID).
			Return(&shared.CoachSnapshot{ID: coachID, Name: "Asha", Specialization: "singles", HourlyRate: 400, IsActive: true}, nil).Times(1)
		s.mockRules.EXPECT().ListOrdered(gomock.Any()).
			Return([]*shared.RuleSnapshot{
				{ID: uuid.New(), Name: "Peak Hours", Kind: "peak_hour", Multiplier: 1.5, StartHour: 18, EndHour: 21, Priority: 1},
			}, nil).Times(1)

		quote, err := s.bookingQueries.PreviewPrice(s.T().Context(), queries.PreviewPriceParams{
			CourtID: courtID,
			Start:   istTime(18),
			End:     istTime(19),
			CoachID: &coachID,
		})
		require.NoError(s.T(), err)
		require.Equal(s.T(), float64(300), quote.CourtFee)
		require.Equal(s.T(), float64(400), quote.CoachFee)
		require.Equal(s.T(), int64(700), quote.Total)
	})

	s.Run("unknown equipment prices at zero but stays on the receipt", func() {
		knownID := uuid.New()
		ghostID := uuid.New()
		s.mockCourts.EXPECT().FindByID(gomock.Any(), courtID).
			Return(courtSnap(courtID, 100, true), nil).Times(1)
		s.mockEquipment.EXPECT().FindByIDs(gomock.Any(), []uuid.UUID{knownID, ghostID}).
			Return(map[uuid.UUID]*shared.EquipmentSnapshot{
				knownID: {ID: knownID, Name: "Pro Racket", EquipmentType: "racket", TotalStock: 10, UnitPrice: 50},
			}, nil).Times(1)
		s.mockRules.EXPECT().ListOrdered(gomock.Any()).
			Return(nil, nil).Times(1)

		quote, err := s.bookingQueries.PreviewPrice(s.T().Context(), queries.PreviewPriceParams{
			CourtID: courtID,
			Start:   istTime(10),
			End:     istTime(11),
			Lines: []queries.EquipmentLineParam{
				{EquipmentID: knownID, Quantity: 2},
				{EquipmentID: ghostID, Quantity: 3},
			},
		})
		require.NoError(s.T(), err)
		require.Equal(s.T(), float64(100), quote.EquipmentFee)
		require.Len(s.T(), quote.Lines, 2)
		require.True(s.T(), quote.Lines[0].Found)
		require.False(s.T(), quote.Lines[1].Found)
		require.Equal(s.T(), int64(200), quote.Total)
	})

	s.Run("non-positive quantity is rejected", func() {
		s.mockCourts.EXPECT().FindByID(gomock.Any(), courtID).
			Return(courtSnap(courtID, 100, true), nil).Times(1)
		s.mockEquipment.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]*shared.EquipmentSnapshot{}, nil).Times(1)

		_, err := s.bookingQueries.PreviewPrice(s.T().Context(), queries.PreviewPriceParams{
			CourtID: courtID,
			Start:   istTime(10),
			End:     istTime(11),
			Lines:   []queries.EquipmentLineParam{{EquipmentID: uuid.New(), Quantity: 0}},
		})
		require.ErrorIs(s.T(), err, queries.ErrInvalidLine)
	})

	s.Run("unknown court aborts", func() {
		s.mockCourts.EXPECT().FindByID(gomock.Any(), courtID).
			Return(nil, notFoundErr()).Times(1)

		_, err := s.bookingQueries.PreviewPrice(s.T().Context(), queries.PreviewPriceParams{
			CourtID: courtID,
			Start:   istTime(10),
			End:     istTime(11),
		})
		require.ErrorIs(s.T(), err, queries.ErrCourtNotFound)
	})

	s.Run("inactive court is treated as missing", func() {
		s.mockCourts.EXPECT().FindByID(gomock.Any(), courtID).
			Return(courtSnap(courtID, 200, false), nil).Times(1)

		_, err := s.bookingQueries.PreviewPrice(s.T().Context(), queries.PreviewPriceParams{
			CourtID: courtID,
			Start:   istTime(10),
			End:     istTime(11),
		})
		require.ErrorIs(s.T(), err, queries.ErrCourtNotFound)
	})

	s.Run("unknown coach aborts instead of pricing without the add-on", func() {
		coachID := uuid.New()
		s.mockCourts.EXPECT().FindByID(gomock.Any(), courtID).
			Return(courtSnap(courtID, 200, true), nil).Times(1)
		s.mockCoaches.EXPECT().FindByID(gomock.Any(), coachID).
			Return(nil, notFoundErr()).Times(1)

		_, err := s.bookingQueries.PreviewPrice(s.T().Context(), queries.PreviewPriceParams{
			CourtID: courtID,
			Start:   istTime(10),
			End:     istTime(11),
			CoachID: &coachID,
		})
		require.ErrorIs(s.T(), err, queries.ErrCoachNotFound)
	})
}

// ================================================================================
// TestGetByID
// ================================================================================

func (s *BookingQueriesTestSuite) TestGetByID() {
	s.Run("unknown id maps to not found", func() {
		id := uuid.New()
		s.mockStore.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, notFoundErr()).Times(1)

		_, err := s.bookingQueries.GetByID(s.T().Context(), id)
		require.ErrorIs(s.T(), err, queries.ErrBookingNotFound)
	})
}

// ================================================================================
// TestListByDay
// ================================================================================

func (s *BookingQueriesTestSuite) TestListByDay() {
	s.Run("queries the facility-local day bounds", func() {
		day := time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC)
		from := time.Date(2030, 3, 4, 0, 0, 0, 0, ist)
		to := from.AddDate(0, 0, 1)

		s.mockStore.EXPECT().ListByRange(gomock.Any(), from, to).
			Return([]*queries.BookingListItem{}, nil).Times(1)

		items, err := s.bookingQueries.ListByDay(s.T().Context(), day)
		require.NoError(s.T(), err)
		require.Empty(s.T(), items)
	})
}
