package interfaces

import "errors"

// Errors surfaced by repository implementations. Usecases translate them into
// their own sentinels where needed; handlers map them to HTTP statuses.
var (
	// ErrDuplicateTrackingNumber is returned by IShipmentRepository.Create
	// when the tracking number is already taken by another row.
	ErrDuplicateTrackingNumber = errors.New("tracking number already exists")

	// ErrUnavailable is returned when the backend store could not be reached
	// after the transport retry budget was exhausted.
	ErrUnavailable = errors.New("backend store unavailable")
)
