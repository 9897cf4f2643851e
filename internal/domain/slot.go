package domain

import "time"

// Slot represents a single physical parking space.
// Реестр слотов append-only: слоты заводятся при провижининге парковки
// и дальше не перенумеровываются и не удаляются.
type Slot struct {
	ID        int64
	Label     string // отображаемый номер места, например "A01"
	CreatedAt time.Time
}
