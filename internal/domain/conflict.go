package domain

// FirstConflict возвращает первое активное бронирование, окно которого
// пересекается с window, или nil, если конфликтов нет.
//
// Функция чистая: решение принимается только по переданному срезу,
// без обращений к хранилищу. excludeID исключает бронирование из
// сравнения (используется при продлении, чтобы бронь не конфликтовала
// сама с собой); 0 означает "ничего не исключать".
//
// bookings ожидаются отсортированными по времени начала, поэтому
// возвращается самый ранний конфликт.
func FirstConflict(bookings []*Booking, window TimeWindow, excludeID int64) *Booking {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if b.Window().Overlaps(window) {
			return b
		}
	}
	return nil
}
