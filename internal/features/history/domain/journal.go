package domain

import (
	"time"

	rates "ongkir-api/internal/features/rates/domain"
)

// Capacity is the fixed journal length. Inserting into a full journal
// evicts the oldest entry.
const Capacity = 10

// Journal is the bounded, most-recent-first log of past calculations.
// Entries are never individually edited or deleted; the only mutations
// are Insert and a full clear.
type Journal []rates.ShippingCalculation

// Insert stamps the calculation with the given time, prepends it, and
// truncates the journal to Capacity. The receiver is not modified.
func (j Journal) Insert(calc rates.ShippingCalculation, now time.Time) Journal {
	calc.RecordedAt = now

	updated := make(Journal, 0, len(j)+1)
	updated = append(updated, calc)
	updated = append(updated, j...)

	if len(updated) > Capacity {
		updated = updated[:Capacity]
	}
	return updated
}
