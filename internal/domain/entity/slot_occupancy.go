package entity

// SlotOccupancy is the per-time-range count of active (non-cancelled)
// appointments for one doctor on one calendar date. Capacity is one booking
// per exact time string, so any count >= 1 means the slot is taken.
type SlotOccupancy struct {
	Time  string `json:"time"`
	Count int64  `json:"count"`
}

// DoctorFilter is a domain-level filter for browsing doctors.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Specialization string // exact specialization name, empty or "All" means no filter
}
