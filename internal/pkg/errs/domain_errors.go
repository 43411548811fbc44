package errs

// Sentinel errors shared by the domain, ledger and usecase layers.
// Callers distinguish failures with errors.Is.
var (
	// Input errors
	ErrInvalidRange = New("check-out must be after check-in")
	ErrInvalidGuest = New("guest name must not be empty")

	// Inventory errors
	ErrRoomNotFound    = New("room not found")
	ErrRoomUnavailable = New("room is not available for the selected dates")

	// Reservation errors
	ErrReservationNotFound = New("reservation not found")

	// Payment errors
	ErrPaymentDeclined = New("payment declined")
)
