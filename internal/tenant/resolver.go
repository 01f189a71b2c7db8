// Package tenant routes data access to the right physical database for an
// organization: the shared pool by default, or a cached dedicated connection
// when the org is flagged for one.
package tenant

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/crewforge/backoffice/internal/model"
)

// OrganizationSource looks up the routing record for an organization.
type OrganizationSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
}

// Opener dials a dedicated database. Swappable in tests.
type Opener func(dsn string, maxPool int) (*gorm.DB, error)

// Resolver memoizes one live dedicated connection per organization.
// Concurrent first accesses for the same org share a single dial via
// singleflight; a failed dial leaves no pending state behind, so the next
// call retries cleanly.
type Resolver struct {
	shared  *gorm.DB
	orgs    OrganizationSource
	opener  Opener
	maxPool int

	mu    sync.RWMutex
	conns map[uuid.UUID]*gorm.DB
	group singleflight.Group
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithOpener overrides how dedicated databases are dialed.
func WithOpener(open Opener) Option {
	return func(r *Resolver) { r.opener = open }
}

func NewResolver(shared *gorm.DB, orgs OrganizationSource, maxPool int, opts ...Option) *Resolver {
	r := &Resolver{
		shared:  shared,
		orgs:    orgs,
		opener:  openPostgres,
		maxPool: maxPool,
		conns:   make(map[uuid.UUID]*gorm.DB),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Shared returns the shared connection.
func (r *Resolver) Shared() *gorm.DB { return r.shared }

// IsShared reports whether db is the shared connection.
func (r *Resolver) IsShared(db *gorm.DB) bool { return db == r.shared }

// DBForOrg resolves the connection for an organization. Callers are
// responsible for archived/legal-hold checks; the resolver only fails on a
// missing organization or a dial error.
func (r *Resolver) DBForOrg(ctx context.Context, orgID uuid.UUID) (*gorm.DB, error) {
	org, err := r.orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !org.UseDedicatedDB || org.DatabaseURI == nil || *org.DatabaseURI == "" {
		return r.shared, nil
	}

	r.mu.RLock()
	conn, ok := r.conns[orgID]
	r.mu.RUnlock()
	if ok {
		return conn, nil
	}

	v, err, _ := r.group.Do(orgID.String(), func() (interface{}, error) {
		r.mu.RLock()
		existing, ok := r.conns[orgID]
		r.mu.RUnlock()
		if ok {
			return existing, nil
		}

		db, err := r.opener(dedicatedDSN(org), r.maxPool)
		if err != nil {
			return nil, fmt.Errorf("opening dedicated database for org %s: %w", orgID, err)
		}

		r.mu.Lock()
		r.conns[orgID] = db
		r.mu.Unlock()
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*gorm.DB), nil
}

// Reset closes and evicts a cached dedicated connection, e.g. after a
// datastore migration. Close failures are swallowed so the connection can be
// re-established on the next access.
func (r *Resolver) Reset(orgID uuid.UUID) {
	r.group.Forget(orgID.String())

	r.mu.Lock()
	conn, ok := r.conns[orgID]
	if ok {
		delete(r.conns, orgID)
	}
	r.mu.Unlock()

	if !ok {
		return
	}
	if err := closeDB(conn); err != nil {
		slog.Warn("closing dedicated connection", "orgID", orgID, "error", err)
	}
}

// Close tears down every cached dedicated connection.
func (r *Resolver) Close() {
	r.mu.Lock()
	conns := r.conns
	r.conns = make(map[uuid.UUID]*gorm.DB)
	r.mu.Unlock()

	for orgID, conn := range conns {
		if err := closeDB(conn); err != nil {
			slog.Warn("closing dedicated connection", "orgID", orgID, "error", err)
		}
	}
}

func closeDB(db *gorm.DB) error {
	if db == nil || db.Config == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// dedicatedDSN combines the org's stored URI with an optional database-name
// override, accepting both URL-style and keyword-style DSNs.
func dedicatedDSN(org *model.Organization) string {
	dsn := strings.TrimSpace(*org.DatabaseURI)
	if org.DatabaseName == nil || *org.DatabaseName == "" {
		return dsn
	}
	name := *org.DatabaseName
	if strings.Contains(dsn, "://") {
		if u, err := url.Parse(dsn); err == nil {
			u.Path = "/" + name
			return u.String()
		}
	}
	return dsn + " dbname=" + name
}

func openPostgres(dsn string, maxPool int) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(maxPool)
	sqlDB.SetMaxIdleConns(maxPool)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}
