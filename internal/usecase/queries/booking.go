package queries

import (
	"context"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/coach"
	"courtbook/internal/domain/equipment"
	"courtbook/internal/domain/pricing"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/localtime"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrCourtNotFound   = errs.New("court not found")
	ErrCoachNotFound   = errs.New("coach not found")
	ErrInvalidWindow   = errs.New("invalid booking window")
	ErrInvalidLine     = errs.New("invalid equipment line")
	ErrQueryFailed     = errs.New("query failed")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// HasOverlap tests confirmed bookings only, with half-open semantics.
	HasOverlap(ctx context.Context, courtID uuid.UUID, start, end time.Time) (bool, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]*BookingListItem, error)
}

type CourtReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.CourtSnapshot, error)
}

type CoachReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.CoachSnapshot, error)
}

type EquipmentReader interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*shared.EquipmentSnapshot, error)
}

type PricingRuleReader interface {
	ListOrdered(ctx context.Context) ([]*shared.RuleSnapshot, error)
}

type bookingQueriesImpl struct {
	store       BookingReadStore
	courtReader CourtReader
	coachReader CoachReader
	equipReader EquipmentReader
	ruleReader  PricingRuleReader
	factory     *booking.Factory
	location    *time.Location
}

func NewBookingQueries(
	store BookingReadStore,
	courtReader CourtReader,
	coachReader CoachReader,
	equipReader EquipmentReader,
	ruleReader PricingRuleReader,
	factory *booking.Factory,
	location *time.Location,
) BookingQueries {
	return &bookingQueriesImpl{
		store:       store,
		courtReader: courtReader,
		coachReader: coachReader,
		equipReader: equipReader,
		ruleReader:  ruleReader,
		factory:     factory,
		location:    location,
	}
}

func (q *bookingQueriesImpl) CheckAvailability(ctx context.Context, courtID uuid.UUID, start, end time.Time) (bool, error) {
	window, err := booking.NewTimeWindow(start, end)
	if err != nil {
		return false, errs.Mark(err, ErrInvalidWindow)
	}

	overlap, err := q.store.HasOverlap(ctx, courtID, window.Start(), window.End())
	if err != nil {
		return false, errs.Mark(err, ErrQueryFailed)
	}
	return !overlap, nil
}

// PreviewPrice is a pure read: it computes the same quote ConfirmBooking
// would snapshot, without touching any stored state.
func (q *bookingQueriesImpl) PreviewPrice(ctx context.Context, params PreviewPriceParams) (*pricing.Quote, error) {
	window, err := booking.NewTimeWindow(params.Start, params.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWindow)
	}

	courtSnap, err := q.courtReader.FindByID(ctx, params.CourtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	courtEntity, err := courtSnap.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	if err := courtEntity.EnsureBookable(); err != nil {
		return nil, ErrCourtNotFound
	}

	var coachEntity *coach.Coach
	if params.CoachID != nil {
		coachSnap, coachErr := q.coachReader.FindByID(ctx, *params.CoachID)
		if coachErr != nil {
			if infra.IsKind(coachErr, infra.KindNotFound) {
				return nil, ErrCoachNotFound
			}
			return nil, errs.Mark(coachErr, ErrQueryFailed)
		}
		coachEntity, coachErr = coachSnap.ToDomain()
		if coachErr != nil {
			return nil, errs.Mark(coachErr, ErrQueryFailed)
		}
	}

	resolved, err := q.resolveEquipment(ctx, params.Lines)
	if err != nil {
		return nil, err
	}

	snapshots, err := q.ruleReader.ListOrdered(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	ruleSet, err := shared.BuildRuleSet(snapshots)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	quote := q.factory.QuoteBooking(courtEntity, window, ruleSet, coachEntity, resolved)
	return &quote, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByDay(ctx context.Context, day time.Time) ([]*BookingListItem, error) {
	from, to := localtime.DayBounds(day, q.location)

	items, err := q.store.ListByRange(ctx, from, to)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) resolveEquipment(ctx context.Context, lines []EquipmentLineParam) ([]booking.ResolvedLine, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(lines))
	for i, l := range lines {
		ids[i] = l.EquipmentID
	}

	found, err := q.equipReader.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	resolved := make([]booking.ResolvedLine, 0, len(lines))
	for _, l := range lines {
		line, lineErr := equipment.NewLine(l.EquipmentID, l.Quantity)
		if lineErr != nil {
			return nil, errs.Mark(lineErr, ErrInvalidLine)
		}

		var item *equipment.Item
		if snap, ok := found[l.EquipmentID]; ok {
			item, lineErr = snap.ToDomain()
			if lineErr != nil {
				return nil, errs.Mark(lineErr, ErrQueryFailed)
			}
		}
		resolved = append(resolved, booking.ResolvedLine{Line: line, Item: item})
	}
	return resolved, nil
}
