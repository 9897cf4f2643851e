package get_availability

// Request запрос снимка доступности на дату
type Request struct {
	Date string // "2025-10-15"
}

// SlotAvailability доступность одного слота на дату
type SlotAvailability struct {
	SlotID    int64  `json:"slotId"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// Response снимок доступности всех слотов на дату
type Response struct {
	Date  string             `json:"date"`
	Slots []SlotAvailability `json:"slots"`

	Total     int `json:"total"`
	Available int `json:"available"`
	Booked    int `json:"booked"`
}
