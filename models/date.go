package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Date is a calendar day stored in a DATE column and sent as YYYY-MM-DD.
type Date struct {
	civil.Date
}

// NewDate returns nil for a nil date so optional legs map to NULL.
func NewDate(d *civil.Date) *Date {
	if d == nil {
		return nil
	}
	return &Date{Date: *d}
}

// Civil returns the wrapped date, or nil.
func (d *Date) Civil() *civil.Date {
	if d == nil {
		return nil
	}
	c := d.Date
	return &c
}

func (d Date) Value() (driver.Value, error) {
	return d.Date.String(), nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Date = civil.DateOf(v)
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	}
	return fmt.Errorf("models.Date: cannot scan %T", src)
}

func (d *Date) parse(s string) error {
	if len(s) > 10 {
		s = s[:10]
	}
	parsed, err := civil.ParseDate(s)
	if err != nil {
		return fmt.Errorf("models.Date: %w", err)
	}
	d.Date = parsed
	return nil
}

// GormDataType keeps AutoMigrate from guessing a column type for the struct.
func (Date) GormDataType() string { return "date" }
