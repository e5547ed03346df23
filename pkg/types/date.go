package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// DateLayout формат календарной даты без времени
const DateLayout = "2006-01-02"

// ErrInvalidDateFormat возвращается, если строка не соответствует формату YYYY-MM-DD
var ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

// Date календарная дата в формате YYYY-MM-DD.
// Единственное представление даты внутри сервиса: парсинг выполняется только на границе API,
// в БД хранится как DATE.
type Date string

// ParseDate парсит и нормализует строку YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", ErrInvalidDateFormat
	}
	return Date(parsed.Format(DateLayout)), nil
}

// NewDate создаёт Date из time.Time (используется календарная дата в локации t)
func NewDate(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Validate проверяет формат YYYY-MM-DD
func (d Date) Validate() error {
	_, err := ParseDate(string(d))
	return err
}

// IsZero возвращает true для пустого значения
func (d Date) IsZero() bool {
	return d == ""
}

func (d Date) String() string {
	return string(d)
}

// Time возвращает полночь даты в UTC
func (d Date) Time() (time.Time, error) {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

// Scan реализует sql.Scanner (lib/pq отдаёт DATE как time.Time)
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(DateLayout))
	case string:
		*d = Date(firstDateChars(v))
	case []byte:
		*d = Date(firstDateChars(string(v)))
	default:
		return fmt.Errorf("types.Date: unsupported scan type %T", src)
	}
	return nil
}

func firstDateChars(s string) string {
	if len(s) > len(DateLayout) {
		return s[:len(DateLayout)]
	}
	return s
}
