// Package store persists security event Logs and enforces their write rules.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/ariebrainware/security-event-log/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// timestampPrecision matches the datetime(3) column gorm creates on MySQL, so a
// created Log reads back unchanged.
const timestampPrecision = time.Millisecond

// EventStore is the durable collection of Log records. Every method runs as a
// single database transaction.
type EventStore struct {
	db     *gorm.DB
	now    func() time.Time
	locate func(ip string) string
}

// Option configures an EventStore.
type Option func(*EventStore)

// WithClock overrides the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *EventStore) { s.now = now }
}

// WithLocator sets the function used to resolve a source IP into a location label.
func WithLocator(locate func(ip string) string) Option {
	return func(s *EventStore) { s.locate = locate }
}

// New returns an EventStore backed by db.
func New(db *gorm.DB, opts ...Option) *EventStore {
	s := &EventStore{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Migrate creates or updates the logs table.
func (s *EventStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&model.Log{}); err != nil {
		return &StoreError{Op: "migrate", Err: err}
	}
	return nil
}

// transact runs fn in one transaction and wraps unexpected failures in StoreError.
func (s *EventStore) transact(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	err := s.db.WithContext(ctx).Transaction(fn)
	if err == nil {
		return nil
	}
	var (
		nf *NotFoundError
		ve *ValidationError
		se *StoreError
	)
	if errors.As(err, &nf) || errors.As(err, &ve) || errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

func (s *EventStore) location(ip string) string {
	if s.locate == nil {
		return ""
	}
	return s.locate(ip)
}

// Create validates in, stamps it with a new id and the current time, and persists it.
func (s *EventStore) Create(ctx context.Context, in LogInput) (model.Log, error) {
	v, err := in.validate()
	if err != nil {
		return model.Log{}, err
	}

	entry := model.Log{
		Timestamp:   s.now().UTC().Truncate(timestampPrecision),
		EventType:   v.eventType,
		SourceIP:    v.sourceIP,
		Severity:    v.severity,
		Description: v.description,
		Location:    s.location(v.sourceIP),
	}
	err = s.transact(ctx, "create", func(tx *gorm.DB) error {
		return tx.Create(&entry).Error
	})
	if err != nil {
		return model.Log{}, err
	}
	return entry, nil
}

// List returns every Log, most recent first. Equal timestamps are ordered by
// descending id so the later insert comes first.
func (s *EventStore) List(ctx context.Context) ([]model.Log, error) {
	logs := []model.Log{}
	err := s.transact(ctx, "list", func(tx *gorm.DB) error {
		return tx.
			Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
			Find(&logs).Error
	})
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func fetch(tx *gorm.DB, id uint) (model.Log, error) {
	var l model.Log
	err := tx.First(&l, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Log{}, &NotFoundError{ID: id}
	}
	return l, err
}

// Get returns the Log with the given id.
func (s *EventStore) Get(ctx context.Context, id uint) (model.Log, error) {
	var l model.Log
	err := s.transact(ctx, "get", func(tx *gorm.DB) error {
		var err error
		l, err = fetch(tx, id)
		return err
	})
	return l, err
}

// Update applies a partial change to the Log with the given id. The id and
// timestamp of the record never change.
func (s *EventStore) Update(ctx context.Context, id uint, patch LogPatch) (model.Log, error) {
	updates, err := patch.validate()
	if err != nil {
		return model.Log{}, err
	}
	if ip, ok := updates["source_ip"].(string); ok {
		updates["location"] = s.location(ip)
	}
	return s.apply(ctx, "update", id, updates)
}

// Replace overwrites every writable field of the Log with the given id.
func (s *EventStore) Replace(ctx context.Context, id uint, in LogInput) (model.Log, error) {
	v, err := in.validate()
	if err != nil {
		return model.Log{}, err
	}
	return s.apply(ctx, "replace", id, map[string]interface{}{
		"event_type":  v.eventType,
		"source_ip":   v.sourceIP,
		"severity":    v.severity,
		"description": v.description,
		"location":    s.location(v.sourceIP),
	})
}

func (s *EventStore) apply(ctx context.Context, op string, id uint, updates map[string]interface{}) (model.Log, error) {
	var l model.Log
	err := s.transact(ctx, op, func(tx *gorm.DB) error {
		existing, err := fetch(tx, id)
		if err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
		}
		l, err = fetch(tx, id)
		return err
	})
	return l, err
}

// Delete removes the Log with the given id. Deleting a missing id fails.
func (s *EventStore) Delete(ctx context.Context, id uint) error {
	return s.transact(ctx, "delete", func(tx *gorm.DB) error {
		res := tx.Delete(&model.Log{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{ID: id}
		}
		return nil
	})
}

// Count returns the number of stored Logs.
func (s *EventStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.transact(ctx, "count", func(tx *gorm.DB) error {
		return tx.Model(&model.Log{}).Count(&n).Error
	})
	return n, err
}

// CountByEventType counts Logs for each of the given event types in one query.
// Every requested type is present in the result, zero when it has no rows.
// With no arguments all event types are counted.
func (s *EventStore) CountByEventType(ctx context.Context, types ...model.EventType) (map[model.EventType]int64, error) {
	if len(types) == 0 {
		types = model.EventTypes
	}

	var rows []struct {
		EventType model.EventType
		Total     int64
	}
	err := s.transact(ctx, "count by event type", func(tx *gorm.DB) error {
		return tx.Model(&model.Log{}).
			Select("event_type, COUNT(*) AS total").
			Where("event_type IN ?", types).
			Group("event_type").
			Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[model.EventType]int64, len(types))
	for _, t := range types {
		counts[t] = 0
	}
	for _, r := range rows {
		counts[r.EventType] = r.Total
	}
	return counts, nil
}
