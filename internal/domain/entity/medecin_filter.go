package entity

// MedecinFilter is a domain-level filter for the medecin directory.
// Used by repository layer to avoid coupling with delivery DTOs.
type MedecinFilter struct {
	Name           string // Filter by medecin name (ILIKE)
	Specialization string // Filter by specialization (ILIKE)
}
