package pos

import "restoflow-backend/internal/models"

// PersistedState is the durable subset of a snapshot. The floor plan
// and cart are deliberately volatile: they reset to defaults on load.
type PersistedState struct {
	Shift    models.Shift     `json:"shift"`
	Orders   []models.Order   `json:"orders"`
	Theme    models.Theme     `json:"theme"`
	Language models.Language  `json:"language"`
	Products []models.Product `json:"products"`
	Staff    []models.Staff   `json:"staff"`
}

// Persisted extracts the durable subset of the snapshot.
func (s Snapshot) Persisted() PersistedState {
	c := s.Clone()
	return PersistedState{
		Shift:    c.Shift,
		Orders:   c.Orders,
		Theme:    c.Theme,
		Language: c.Language,
		Products: c.Products,
		Staff:    c.Staff,
	}
}

// Restore rebuilds a snapshot from a persisted record, with tables and
// cart reset to the defaults.
func Restore(p PersistedState) Snapshot {
	snap := NewSnapshot()
	snap.Shift = p.Shift
	snap.Orders = p.Orders
	if p.Theme != "" {
		snap.Theme = p.Theme
	}
	if p.Language != "" {
		snap.Language = p.Language
	}
	if p.Products != nil {
		snap.Products = p.Products
	}
	if p.Staff != nil {
		snap.Staff = p.Staff
	}
	return snap.Clone()
}
