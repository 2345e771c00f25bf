package reports

import (
	"pet-registry/internal/domain/lifecycle"
	"pet-registry/internal/domain/pets"
)

// JoinActive asocia a cada mascota sus reportes activos.
// Es el join O(P·R) derivado en cada lectura; no se cachea.
func JoinActive(ps []pets.Pet, rs []Report) map[string][]Report {
	out := make(map[string][]Report, len(ps))
	for _, p := range ps {
		matches := []Report{}
		for _, r := range rs {
			if r.PetID == p.ID && r.Status == lifecycle.ReportStatusActive {
				matches = append(matches, r)
			}
		}
		out[p.ID] = matches
	}
	return out
}
