//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, name) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, email, "Test User")
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestCourt(t *testing.T, db DBLike, name string, baseRate float64, active bool) uuid.UUID {
	t.Helper()

	courtID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO courts (id, name, court_type, base_rate, is_active) VALUES ($1, $2, 'indoor', $3, $4)",
		courtID, name, baseRate, active)
	require.NoError(t, err)

	return courtID
}

func CreateTestCoach(t *testing.T, db DBLike, name string, hourlyRate float64) uuid.UUID {
	t.Helper()

	coachID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO coaches (id, name, specialization, hourly_rate, is_active) VALUES ($1, $2, 'singles', $3, true)",
		coachID, name, hourlyRate)
	require.NoError(t, err)

	return coachID
}

func CreateTestEquipment(t *testing.T, db DBLike, name, equipmentType string, unitPrice float64) uuid.UUID {
	t.Helper()

	equipmentID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO equipment (id, name, equipment_type, total_stock, unit_price) VALUES ($1, $2, $3, 20, $4)",
		equipmentID, name, equipmentType, unitPrice)
	require.NoError(t, err)

	return equipmentID
}

func CreateTestPricingRule(t *testing.T, db DBLike, name, ruleType string, multiplier, addition float64, startHour, endHour int, days []int, priority int) uuid.UUID {
	t.Helper()

	ruleID := uuid.New()
	ctx := context.Background()

	var dayArg any
	if days != nil {
		dayArg = days
	}
	var startArg, endArg any
	if ruleType == "peak_hour" {
		startArg, endArg = startHour, endHour
	}

	_, err := db.Exec(ctx, `
		INSERT INTO pricing_rules (id, name, rule_type, multiplier, addition, start_hour, end_hour, days, priority, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true)`,
		ruleID, name, ruleType, multiplier, addition, startArg, endArg, dayArg, priority)
	require.NoError(t, err)

	return ruleID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, email, name) VALUES
		    (gen_random_uuid(), 'player@example.com', 'Default Player')
		ON CONFLICT (email) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
