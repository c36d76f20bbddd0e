package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrGuestCountExceeded = errors.New("guest count exceeded")
	ErrDatesUnavailable   = errors.New("dates unavailable")
	ErrAlreadyCancelled   = errors.New("booking is already cancelled")
	ErrNegativePrice      = errors.New("price cannot be negative")
)

const DateLayout = "2006-01-02"

// Date is a calendar date with no time component, interpreted in the
// listing's local calendar. Internally pinned to UTC midnight so equality
// and ordering never shift across timezones.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDateRange
	}
	return NewDate(t), nil
}

func NewDate(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) Time() time.Time      { return d.t }
func (d Date) String() string       { return d.t.Format(DateLayout) }
func (d Date) IsZero() bool         { return d.t.IsZero() }
func (d Date) Before(o Date) bool   { return d.t.Before(o.t) }
func (d Date) After(o Date) bool    { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool    { return d.t.Equal(o.t) }
func (d Date) AddDays(n int) Date   { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) DaysUntil(o Date) int { return int(o.t.Sub(d.t) / (24 * time.Hour)) }

// StayRange is a half-open stay interval [checkIn, checkOut): the checkout
// day is not a bookable night, so back-to-back stays never conflict.
type StayRange struct {
	checkIn  Date
	checkOut Date
}

func NewStayRange(checkIn, checkOut Date) (StayRange, error) {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return StayRange{}, ErrInvalidDateRange
	}
	return StayRange{checkIn: checkIn, checkOut: checkOut}, nil
}

func (r StayRange) CheckIn() Date  { return r.checkIn }
func (r StayRange) CheckOut() Date { return r.checkOut }

func (r StayRange) Nights() int {
	return r.checkIn.DaysUntil(r.checkOut)
}

// Overlaps reports whether two half-open ranges share at least one night:
// [a,b) and [c,d) overlap iff a < d && c < b.
func (r StayRange) Overlaps(o StayRange) bool {
	return r.checkIn.Before(o.checkOut) && o.checkIn.Before(r.checkOut)
}

// Contains reports whether day is a night of the stay (checkout day excluded).
func (r StayRange) Contains(day Date) bool {
	return !day.Before(r.checkIn) && day.Before(r.checkOut)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}
