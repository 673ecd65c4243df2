package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// JSON stores a value JSON-encoded in a TEXT column. It binds directly
// as a query parameter and scans back from TEXT or BLOB.
type JSON[T any] struct {
	raw json.RawMessage
	val *T

	Valid bool
}

func NewJSON[T any](v T) *JSON[T] {
	j := &JSON[T]{}
	raw, err := json.Marshal(v)
	if err != nil {
		return j
	}
	j.raw, j.val, j.Valid = raw, &v, true
	return j
}

// Val returns the decoded value, zero when invalid.
func (j JSON[T]) Val() T {
	if j.val == nil {
		var t T
		return t
	}
	return *j.val
}

// Scan implements the Scanner interface.
func (j *JSON[T]) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		j.raw, j.val, j.Valid = nil, nil, false
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("types: cannot scan %T into JSON", value)
	}
	return j.decode(data)
}

// Value implements the driver Valuer interface.
func (j JSON[T]) Value() (driver.Value, error) {
	if !j.Valid {
		return nil, nil
	}
	return string(j.raw), nil
}

func (j JSON[T]) MarshalJSON() ([]byte, error) {
	if j.raw == nil {
		return []byte("null"), nil
	}
	return j.raw, nil
}

func (j *JSON[T]) UnmarshalJSON(data []byte) error {
	if j == nil {
		return errors.New("types: UnmarshalJSON on nil JSON pointer")
	}
	return j.decode(data)
}

func (j *JSON[T]) decode(data []byte) error {
	var val T
	if err := json.Unmarshal(data, &val); err != nil {
		j.raw, j.val, j.Valid = nil, nil, false
		return err
	}

	j.raw = append(json.RawMessage(nil), data...)
	j.val, j.Valid = &val, true
	return nil
}
