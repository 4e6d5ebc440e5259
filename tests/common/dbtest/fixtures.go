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

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestCompany(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	companyID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO companies (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING", companyID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM companies WHERE name = $1", name).Scan(&companyID)
	}

	return companyID
}

func CreateTestUser(t *testing.T, db DBLike, email, role string, companyID *uuid.UUID) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, role, company_id, first_name, last_name, phone, address, is_active)
		VALUES ($1, $2, $3, $4, $5, 'Test', 'User', '5551234567', '42 Long Enough Street, Springfield', true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash, role, companyID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestProvider sets up the provider row plus its backing user account.
// Working hours default to 09:00-17:00.
func CreateTestProvider(t *testing.T, db DBLike, companyID uuid.UUID, displayName string) uuid.UUID {
	t.Helper()

	email := strings.ToLower(strings.ReplaceAll(displayName, " ", ".")) + "@provider.test"
	userID := CreateTestUser(t, db, email, "provider", &companyID)

	providerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO providers (id, company_id, user_id, display_name, open_min, close_min, is_active)
		VALUES ($1, $2, $3, $4, 540, 1020, true)
		ON CONFLICT (user_id) DO NOTHING`,
		providerID, companyID, userID, displayName)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM providers WHERE user_id = $1", userID).Scan(&providerID)
	}

	return providerID
}

func CreateTestCategory(t *testing.T, db DBLike, companyID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	categoryID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO categories (id, company_id, name, description)
		VALUES ($1, $2, $3, '') ON CONFLICT (company_id, name) DO NOTHING`,
		categoryID, companyID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM categories WHERE company_id = $1 AND name = $2", companyID, name).Scan(&categoryID)
	}

	return categoryID
}

func CreateTestService(t *testing.T, db DBLike, companyID, providerID, categoryID uuid.UUID, name string, priceCents int64, durationMin int) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO services (id, company_id, provider_id, category_id, name, description, price_cents, currency, duration_min, is_active)
		VALUES ($1, $2, $3, $4, $5, '', $6, 'USD', $7, true)`,
		serviceID, companyID, providerID, categoryID, name, priceCents, durationMin)
	require.NoError(t, err)

	return serviceID
}

func CreateTestAddon(t *testing.T, db DBLike, serviceID uuid.UUID, name string, priceCents int64, required bool) uuid.UUID {
	t.Helper()

	addonID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO service_addons (id, service_id, name, price_cents, required)
		VALUES ($1, $2, $3, $4, $5)`,
		addonID, serviceID, name, priceCents, required)
	require.NoError(t, err)

	return addonID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO companies (id, name) VALUES
		    (gen_random_uuid(), 'Default Company'),
		    (gen_random_uuid(), 'Test Company')
		ON CONFLICT (name) DO NOTHING;
	`)
	return err
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
