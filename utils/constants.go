package utils

const (
	// HTTP status messages
	ErrInvalidRequest   = "Invalid request"
	ErrMemberNotFound   = "Member not found"
	ErrSportNotFound    = "Sport not found"
	ErrFeeNotFound      = "Fee not found"
	ErrPaymentNotFound  = "Payment not found"
	ErrFailedToStore    = "Failed to store data"
	ErrFailedToRetrieve = "Failed to retrieve data"

	// Money is kept at two decimal places everywhere
	MoneyScale = 2
)
