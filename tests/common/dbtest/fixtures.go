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

// SeedReferenceData inserts the fleet and the extras catalog the tests
// book against. Three pitches keep the concurrency tests small but still
// contended.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO pitches (id, name, active) VALUES
		    (1, 'Pitch A', true),
		    (2, 'Pitch B', true),
		    (3, 'Pitch C', true)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO extras (id, code, name, unit_amount_cents, active, kind, max_units) VALUES
		    (1, 'PERSON', 'Persona adicional', 500, true, 'metered', 4),
		    (2, 'PET', 'Mascota', 200, true, 'metered', 4),
		    (3, 'POWER', 'Conexión eléctrica', 300, true, 'toggle', 1)
		ON CONFLICT (id) DO NOTHING;
	`)
	return err
}

// CreateTestBlock inserts a block row directly, bypassing the
// reassignment flow.
func CreateTestBlock(t *testing.T, db DBLike, pitchID int32, startOn, endOn, kind string) uuid.UUID {
	t.Helper()

	blockID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO blocks (id, pitch_id, start_on, end_on, kind) VALUES ($1, $2, $3, $4, $5)",
		blockID, pitchID, startOn, endOn, kind)
	require.NoError(t, err)
	return blockID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds the reference data.
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
