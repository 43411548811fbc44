package reservation

// IsFree reports whether roomNumber has no reservation overlapping period.
// Reservations for other rooms in existing are ignored.
func IsFree(roomNumber int, period StayPeriod, existing []*Reservation) bool {
	for _, r := range existing {
		if r.roomNumber != roomNumber {
			continue
		}
		if r.period.Overlaps(period) {
			return false
		}
	}
	return true
}
