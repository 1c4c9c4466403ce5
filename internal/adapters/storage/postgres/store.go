// Package postgres implements the local list and member stores on
// PostgreSQL via gorm. Payload fields are stored verbatim in json columns.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/jsamuelsen11/listsync/internal/domain/list"
	"github.com/jsamuelsen11/listsync/internal/domain/member"
	"github.com/jsamuelsen11/listsync/internal/platform/config"
	"github.com/jsamuelsen11/listsync/internal/ports"
)

var (
	_ ports.ListStore     = (*Store)(nil)
	_ ports.MemberStore   = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store is a gorm-backed implementation of ports.ListStore and
// ports.MemberStore.
type Store struct {
	db *gorm.DB
}

// Open connects to PostgreSQL and applies the pool settings from cfg.
func Open(ctx context.Context, cfg config.PostgresConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the lists and members tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&listRow{}, &memberRow{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// New creates a Store on db. The schema must already be migrated.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "postgres"
}

// HealthCheck pings the connection pool.
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// --- List operations ---

// FindList returns the list with the given id, or nil, nil when absent.
func (s *Store) FindList(ctx context.Context, id string) (*list.List, error) {
	var row listRow
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding list: %w", err)
	}
	return row.toDomain()
}

// ListLists returns every stored list ordered by creation time.
func (s *Store) ListLists(ctx context.Context) ([]list.List, error) {
	var rows []listRow
	if err := s.db.WithContext(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing lists: %w", err)
	}

	lists := make([]list.List, 0, len(rows))
	for i := range rows {
		l, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		lists = append(lists, *l)
	}
	return lists, nil
}

// PersistList inserts or replaces the list.
func (s *Store) PersistList(ctx context.Context, l *list.List) error {
	row, err := listRowFromDomain(l)
	if err != nil {
		return err
	}
	if err := s.upsert(ctx, row); err != nil {
		return fmt.Errorf("persisting list: %w", err)
	}
	return nil
}

// RemoveList deletes the list. Members are not touched.
func (s *Store) RemoveList(ctx context.Context, l *list.List) error {
	if err := s.db.WithContext(ctx).Delete(&listRow{}, "id = ?", l.ID).Error; err != nil {
		return fmt.Errorf("removing list: %w", err)
	}
	return nil
}

// --- Member operations ---

// FindMember returns the member with the given id, or nil, nil when absent.
func (s *Store) FindMember(ctx context.Context, id string) (*member.Member, error) {
	var row memberRow
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding member: %w", err)
	}
	return row.toDomain()
}

// FindMembersByList returns the members of a list ordered by creation time.
func (s *Store) FindMembersByList(ctx context.Context, listID string) ([]member.Member, error) {
	var rows []memberRow
	err := s.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("finding members of list %s: %w", listID, err)
	}

	members := make([]member.Member, 0, len(rows))
	for i := range rows {
		m, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	return members, nil
}

// PersistMember inserts or replaces the member.
func (s *Store) PersistMember(ctx context.Context, m *member.Member) error {
	row, err := memberRowFromDomain(m)
	if err != nil {
		return err
	}
	if err := s.upsert(ctx, row); err != nil {
		return fmt.Errorf("persisting member: %w", err)
	}
	return nil
}

// RemoveMember deletes the member.
func (s *Store) RemoveMember(ctx context.Context, m *member.Member) error {
	if err := s.db.WithContext(ctx).Delete(&memberRow{}, "id = ?", m.ID).Error; err != nil {
		return fmt.Errorf("removing member: %w", err)
	}
	return nil
}

func (s *Store) upsert(ctx context.Context, row any) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(row).Error
}
