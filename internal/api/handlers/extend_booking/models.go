package extend_booking

// ExtendBookingRequest HTTP request model
type ExtendBookingRequest struct {
	NewEndTime string `json:"newEndTime"` // "19:00"
}

// ConflictResponse ответ при пересечении с чужим бронированием
type ConflictResponse struct {
	Error                string `json:"error"`
	ConflictingBookingID int64  `json:"conflictingBookingId"`
}
