package errs

import "errors"

// Sentinel errors shared by the use-case layers. Handlers map these to HTTP
// statuses; infra errors get marked with them at the use-case boundary.
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already in use")
	ErrBlankName    = errors.New("name cannot be blank")

	// Item errors
	ErrItemNotFound = errors.New("item not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Comment errors
	ErrCommentWithoutBooking = errors.New("item was never rented by this user")

	// Item request errors
	ErrRequestNotFound = errors.New("item request not found")

	// Listing errors
	ErrInvalidPagination = errors.New("invalid pagination parameters")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
