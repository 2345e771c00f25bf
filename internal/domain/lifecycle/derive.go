package lifecycle

import (
	"math"
	"time"
)

const earthRadiusKm = 6371.0

// Distance calcula la distancia haversine en km entre dos coordenadas,
// redondeada a 2 decimales.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*100) / 100
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// AgeYears en años cumplidos: resta ajustada por mes/día, nunca negativa.
func AgeYears(birthDate, now time.Time) int {
	years := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// Etapas de vida según edad cumplida.
const (
	StageBaby   = "Bebé"
	StageYoung  = "Joven"
	StageAdult  = "Adulto"
	StageSenior = "Senior"
)

func AgeStage(birthDate, now time.Time) string {
	years := AgeYears(birthDate, now)
	switch {
	case years < 1:
		return StageBaby
	case years <= 3:
		return StageYoung
	case years <= 8:
		return StageAdult
	default:
		return StageSenior
	}
}

// MaxPetAgeYears es la edad máxima plausible al registrar.
const MaxPetAgeYears = 30

// ValidBirthDate: ni futura ni más vieja que MaxPetAgeYears.
func ValidBirthDate(birthDate, now time.Time) bool {
	if birthDate.After(now) {
		return false
	}
	return AgeYears(birthDate, now) <= MaxPetAgeYears
}
