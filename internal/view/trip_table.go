package view

import "sync"

// TableRow - ячейки одной строки таблицы поездок
type TableRow struct {
	Pickup         string `json:"pickup"`
	Dropoff        string `json:"dropoff"`
	Passengers     string `json:"passengers"`
	DistanceKm     string `json:"distanceKm"`
	Fare           string `json:"fare"`
	PickupBorough  string `json:"pickupBorough"`
	DropoffBorough string `json:"dropoffBorough"`
}

// Cells возвращает ячейки в порядке колонок таблицы
func (r TableRow) Cells() []string {
	return []string{r.Pickup, r.Dropoff, r.Passengers, r.DistanceKm, r.Fare, r.PickupBorough, r.DropoffBorough}
}

// TripTable - тело таблицы поездок
type TripTable struct {
	mu   sync.RWMutex
	rows []TableRow
}

func NewTripTable() *TripTable {
	return &TripTable{rows: []TableRow{}}
}

// ReplaceRows очищает таблицу и добавляет строки одной операцией
func (t *TripTable) ReplaceRows(rows []TableRow) {
	next := make([]TableRow, len(rows))
	copy(next, rows)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = next
}

func (t *TripTable) Rows() []TableRow {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]TableRow{}, t.rows...)
}
