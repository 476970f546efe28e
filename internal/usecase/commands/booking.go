package commands

import (
	"context"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/coach"
	"courtbook/internal/domain/court"
	"courtbook/internal/domain/equipment"
	"courtbook/internal/domain/pricing"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidWindow           = errs.New("invalid booking window")
	ErrCourtNotFound           = errs.New("court not found")
	ErrCoachNotFound           = errs.New("coach not found")
	ErrSlotConflict            = errs.New("slot already taken")
	ErrTransientFailure        = errs.New("storage contention, booking may be retried")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const maxTxRetries = 3

type CreateBookingParams struct {
	CourtID uuid.UUID
	Start   time.Time
	End     time.Time
	CoachID *uuid.UUID
	Lines   []queries.EquipmentLineParam
}

type BookingCommands interface {
	// ConfirmBooking either persists a fully-formed confirmed booking
	// (with all equipment lines) or persists nothing.
	ConfirmBooking(ctx context.Context, userID uuid.UUID, params CreateBookingParams) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	bookingRepo    BookingRepository
	courtRepo      CourtRepository
	coachRepo      CoachRepository
	equipmentRepo  EquipmentRepository
	ruleRepo       PricingRuleRepository
	factory        *booking.Factory
	bookingQueries queries.BookingQueries
	pool           *pgxpool.Pool
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	coachRepo CoachRepository,
	equipmentRepo EquipmentRepository,
	ruleRepo PricingRuleRepository,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
	pool *pgxpool.Pool,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:    bookingRepo,
		courtRepo:      courtRepo,
		coachRepo:      coachRepo,
		equipmentRepo:  equipmentRepo,
		ruleRepo:       ruleRepo,
		factory:        factory,
		bookingQueries: bookingQueries,
		pool:           pool,
	}
}

func (u *bookingUseCaseImpl) ConfirmBooking(
	ctx context.Context,
	userID uuid.UUID,
	params CreateBookingParams,
) (*queries.BookingView, error) {
	window, err := booking.NewTimeWindow(params.Start, params.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWindow)
	}

	courtEntity, err := u.resolveCourt(ctx, params.CourtID)
	if err != nil {
		return nil, err
	}

	coachEntity, err := u.resolveCoach(ctx, params.CoachID)
	if err != nil {
		return nil, err
	}

	resolved, err := u.resolveEquipment(ctx, params.Lines)
	if err != nil {
		return nil, err
	}

	ruleSet, err := u.loadRuleSet(ctx)
	if err != nil {
		return nil, err
	}

	bookingEntity, err := u.factory.CreateBooking(courtEntity, userID, window, ruleSet, coachEntity, resolved)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	lineRecords := toLineRecords(resolved)

	bookingID, err := shared.RunInTxWithRetry(ctx, u.pool, maxTxRetries, func(tx db.DBTX) (uuid.UUID, error) {
		conflict, txErr := u.bookingRepo.HasConflict(ctx, tx, params.CourtID, window.Start(), window.End())
		if txErr != nil {
			return uuid.Nil, errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		if conflict {
			return uuid.Nil, ErrSlotConflict
		}

		id, txErr := u.bookingRepo.Create(ctx, tx, bookingEntity)
		if txErr != nil {
			// The exclusion constraint is the second line of defense:
			// a concurrently committed overlapping row surfaces here.
			if infra.IsKind(txErr, infra.KindConflict) {
				return uuid.Nil, ErrSlotConflict
			}
			return uuid.Nil, errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		if txErr := u.bookingRepo.AddLines(ctx, tx, id, lineRecords); txErr != nil {
			return uuid.Nil, errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		return id, nil
	})
	if err != nil {
		if shared.IsRetryExhausted(err) {
			return nil, errs.Mark(err, ErrTransientFailure)
		}
		return nil, err
	}

	view, err := u.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *bookingUseCaseImpl) resolveCourt(ctx context.Context, courtID uuid.UUID) (*court.Court, error) {
	snap, err := u.courtRepo.FindByID(ctx, courtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, errs.Mark(err, ErrCourtNotFound)
	}

	entity, err := snap.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	// An inactive court is indistinguishable from a missing one for
	// callers; neither is bookable.
	if err := entity.EnsureBookable(); err != nil {
		return nil, ErrCourtNotFound
	}
	return entity, nil
}

// resolveCoach aborts on an unknown coach id rather than silently pricing
// without the requested add-on.
func (u *bookingUseCaseImpl) resolveCoach(ctx context.Context, coachID *uuid.UUID) (*coach.Coach, error) {
	if coachID == nil {
		return nil, nil
	}

	snap, err := u.coachRepo.FindByID(ctx, *coachID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCoachNotFound
		}
		return nil, errs.Mark(err, ErrCoachNotFound)
	}

	entity, err := snap.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return entity, nil
}

// resolveEquipment keeps unknown item ids as unresolved lines: they price
// at zero but stay visible in the breakdown.
func (u *bookingUseCaseImpl) resolveEquipment(ctx context.Context, lines []queries.EquipmentLineParam) ([]booking.ResolvedLine, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(lines))
	for i, l := range lines {
		ids[i] = l.EquipmentID
	}

	found, err := u.equipmentRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	resolved := make([]booking.ResolvedLine, 0, len(lines))
	for _, l := range lines {
		line, lineErr := equipment.NewLine(l.EquipmentID, l.Quantity)
		if lineErr != nil {
			return nil, errs.Mark(lineErr, ErrDomainValidation)
		}

		var item *equipment.Item
		if snap, ok := found[l.EquipmentID]; ok {
			item, lineErr = snap.ToDomain()
			if lineErr != nil {
				return nil, errs.Mark(lineErr, ErrDomainValidation)
			}
		}
		resolved = append(resolved, booking.ResolvedLine{Line: line, Item: item})
	}
	return resolved, nil
}

func (u *bookingUseCaseImpl) loadRuleSet(ctx context.Context) (pricing.RuleSet, error) {
	snapshots, err := u.ruleRepo.ListOrdered(ctx)
	if err != nil {
		return pricing.RuleSet{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	ruleSet, err := shared.BuildRuleSet(snapshots)
	if err != nil {
		return pricing.RuleSet{}, errs.Mark(err, ErrDomainValidation)
	}
	return ruleSet, nil
}

func toLineRecords(resolved []booking.ResolvedLine) []EquipmentLineRecord {
	records := make([]EquipmentLineRecord, 0, len(resolved))
	for _, r := range resolved {
		if r.Item == nil {
			continue
		}
		records = append(records, EquipmentLineRecord{
			EquipmentID: r.Line.ItemID,
			Quantity:    r.Line.Quantity,
			UnitPrice:   r.Item.UnitPrice(),
		})
	}
	return records
}
