package services

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"dive-booking/models"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrStoreUnavailable = errors.New("booking store unavailable")
)

// BookingStore persists submitted bookings. Implementations assign unique,
// increasing ids and are safe for concurrent use.
type BookingStore interface {
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id uint) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
}

// GormBookingStore keeps bookings in MySQL. Ids come from AUTO_INCREMENT.
type GormBookingStore struct {
	DB *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{DB: db}
}

func (s *GormBookingStore) Create(ctx context.Context, b *models.Booking) error {
	if err := s.DB.WithContext(ctx).Create(b).Error; err != nil {
		return classifyDBError("create booking", err)
	}
	return nil
}

func (s *GormBookingStore) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := s.DB.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, classifyDBError("get booking", err)
	}
	return &b, nil
}

func (s *GormBookingStore) List(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := s.DB.WithContext(ctx).Order("id asc").Find(&out).Error; err != nil {
		return nil, classifyDBError("list bookings", err)
	}
	return out, nil
}

// classifyDBError marks connection-level failures with ErrStoreUnavailable so
// callers can tell an unreachable database from a rejected statement.
func classifyDBError(op string, err error) error {
	var myErr *gomysql.MySQLError
	switch {
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, gomysql.ErrInvalidConn),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	case errors.As(err, &myErr):
		switch myErr.Number {
		case 1040, 1045, 1049, 1053, 2002, 2003, 2006, 2013:
			return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
		}
		return fmt.Errorf("%s: mysql error %d: %w", op, myErr.Number, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// MemoryBookingStore keeps bookings in process memory. Records are copied on
// the way in and out so readers never observe a write in progress.
type MemoryBookingStore struct {
	mu      sync.RWMutex
	nextID  uint
	records map[uint]*models.Booking
	now     func() time.Time
}

func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{records: make(map[uint]*models.Booking), now: time.Now}
}

func (m *MemoryBookingStore) Create(ctx context.Context, b *models.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	b.ID = m.nextID
	b.CreatedAt = m.now()
	m.records[b.ID] = b.Clone()
	return nil
}

func (m *MemoryBookingStore) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.records[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return b.Clone(), nil
}

func (m *MemoryBookingStore) List(ctx context.Context) ([]models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Booking, 0, len(m.records))
	for _, b := range m.records {
		out = append(out, *b.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
