package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Time stores a timestamp as "2006-01-02 15:04:05" TEXT, the format
// SQLite's datetime functions understand. It binds as a parameter and
// scans back from TEXT columns.
type Time time.Time

func Now() Time {
	return Time(time.Now())
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Time) String() string {
	return time.Time(t).Format(time.DateTime)
}

// Value implements the driver Valuer interface.
func (t Time) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.String(), nil
}

// Scan implements the Scanner interface.
func (t *Time) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*t = Time{}
		return nil
	case time.Time:
		*t = Time(v)
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	}
	return fmt.Errorf("types: cannot scan %T into Time", value)
}

func (t *Time) parse(s string) error {
	nt, err := time.Parse(time.DateTime, s)
	if err != nil {
		return err
	}
	*t = Time(nt)
	return nil
}

func (t *Time) UnmarshalJSON(b []byte) error {
	return t.parse(strings.Trim(string(b), `"`))
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", t.String())), nil
}
