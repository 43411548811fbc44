package reservation

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date truncates t to its calendar date at UTC midnight.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StayPeriod is the half-open date range [checkIn, checkOut).
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in, out := Date(checkIn), Date(checkOut)
	if !in.Before(out) {
		return StayPeriod{}, ErrInvalidRange
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

const secondsPerDay = 24 * 60 * 60

// Nights is the whole number of days between check-in and check-out.
// Both ends are UTC midnights, so Unix seconds divide exactly; time.Duration
// would saturate on ranges longer than about 292 years.
func (p StayPeriod) Nights() int {
	return int((p.checkOut.Unix() - p.checkIn.Unix()) / secondsPerDay)
}

// Overlaps reports whether two half-open periods share at least one night.
// A check-out on the other's check-in date is not an overlap.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}

func (p StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", p.checkIn.Format(dateLayout), p.checkOut.Format(dateLayout))
}

type GuestName struct {
	value string
}

func NewGuestName(value string) (GuestName, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return GuestName{}, ErrInvalidGuest
	}
	return GuestName{value: value}, nil
}

func (g GuestName) String() string {
	return g.value
}
