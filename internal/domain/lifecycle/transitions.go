package lifecycle

import "strings"

// IsOwner es el chequeo de pertenencia que todo entrypoint mutador aplica
// server-side antes de tocar un documento.
func IsOwner(entityOwnerID, userID string) bool {
	entityOwnerID = strings.TrimSpace(entityOwnerID)
	userID = strings.TrimSpace(userID)
	return entityOwnerID != "" && entityOwnerID == userID
}

// Guardas de transición. Cada una dice desde qué estado es válida la
// operación; el service decide qué error devolver.

// CanReportLost: solo se reporta una mascota que está en casa.
func CanReportLost(s PetStatus) bool { return s == PetStatusHome }

// CanMarkSafe: volver a casa vale desde perdida o encontrada.
func CanMarkSafe(s PetStatus) bool { return s == PetStatusLost || s == PetStatusFound }

// CanMarkForAdoption: publicar en adopción solo desde casa.
func CanMarkForAdoption(s PetStatus) bool { return s == PetStatusHome }

// CanRevertAdoption exige estar publicada.
func CanRevertAdoption(s PetStatus) bool { return s == PetStatusAdoption }

// CanDecease: cualquier estado menos ya fallecida.
func CanDecease(s PetStatus) bool { return s != PetStatusDeceased }

// StatusForReportType mapea el tipo de reporte al estado que toma la mascota
// al publicarlo. Tipo desconocido cae a perdida.
func StatusForReportType(t ReportType) PetStatus {
	switch t {
	case ReportTypeFound:
		return PetStatusFound
	case ReportTypeAdoption:
		return PetStatusAdoption
	default:
		return PetStatusLost
	}
}
