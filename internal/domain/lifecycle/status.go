// Package lifecycle define los enums compartidos del dominio y las reglas
// puras sobre ellos: transiciones de estado, badges para la UI y campos
// derivados (edad, distancia). No depende de ningún otro módulo.
package lifecycle

// PetStatus del ciclo de vida de una mascota.
// @Enum 1=home, 2=lost, 3=found, 4=adoption, 5=deceased
type PetStatus int

const (
	PetStatusHome     PetStatus = 1
	PetStatusLost     PetStatus = 2
	PetStatusFound    PetStatus = 3
	PetStatusAdoption PetStatus = 4
	PetStatusDeceased PetStatus = 5
)

// ReportType de un reporte publicado.
// @Enum 1=lost, 2=found, 3=adoption
type ReportType int

const (
	ReportTypeLost     ReportType = 1
	ReportTypeFound    ReportType = 2
	ReportTypeAdoption ReportType = 3
)

// ReportStatus de un reporte.
// @Enum 1=active, 2=resolved, 3=cancelled
type ReportStatus int

const (
	ReportStatusActive    ReportStatus = 1
	ReportStatusResolved  ReportStatus = 2
	ReportStatusCancelled ReportStatus = 3
)

// ProfileStatus de una cuenta de usuario.
// @Enum 1=active, 2=inactive, 3=suspended
type ProfileStatus int

const (
	ProfileActive    ProfileStatus = 1
	ProfileInactive  ProfileStatus = 2
	ProfileSuspended ProfileStatus = 3
)

// Species soportadas.
// @Enum 1=dog, 2=cat
type Species int

const (
	SpeciesDog Species = 1
	SpeciesCat Species = 2
)

// Gender de la mascota.
// @Enum 1=male, 2=female
type Gender int

const (
	GenderMale   Gender = 1
	GenderFemale Gender = 2
)

// Badge es la presentación de un estado para la UI.
type Badge struct {
	Value int    `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var petStatusBadges = []Badge{
	{Value: int(PetStatusHome), Label: "En casa", Icon: "home", Color: "#4caf50"},
	{Value: int(PetStatusLost), Label: "Perdida", Icon: "alert-circle", Color: "#f44336"},
	{Value: int(PetStatusFound), Label: "Encontrada", Icon: "checkmark-circle", Color: "#2196f3"},
	{Value: int(PetStatusAdoption), Label: "En Adopción", Icon: "heart", Color: "#ff9800"},
	{Value: int(PetStatusDeceased), Label: "Fallecida", Icon: "flower", Color: "#9e9e9e"},
}

var reportStatusBadges = []Badge{
	{Value: int(ReportStatusActive), Label: "Activo", Icon: "radio-button-on", Color: "#f44336"},
	{Value: int(ReportStatusResolved), Label: "Resuelto", Icon: "checkmark-circle", Color: "#4caf50"},
	{Value: int(ReportStatusCancelled), Label: "Cancelado", Icon: "close-circle", Color: "#9e9e9e"},
}

var reportTypeBadges = []Badge{
	{Value: int(ReportTypeLost), Label: "Perdida", Icon: "alert-circle", Color: "#f44336"},
	{Value: int(ReportTypeFound), Label: "Encontrada", Icon: "checkmark-circle", Color: "#2196f3"},
	{Value: int(ReportTypeAdoption), Label: "En Adopción", Icon: "heart", Color: "#ff9800"},
}

// badgeFor es total: un valor fuera de rango cae al primer badge de la lista
// en vez de romper el render.
func badgeFor(opts []Badge, value int) Badge {
	for _, b := range opts {
		if b.Value == value {
			return b
		}
	}
	return opts[0]
}

func PetStatusBadge(s PetStatus) Badge       { return badgeFor(petStatusBadges, int(s)) }
func ReportStatusBadge(s ReportStatus) Badge { return badgeFor(reportStatusBadges, int(s)) }
func ReportTypeBadge(t ReportType) Badge     { return badgeFor(reportTypeBadges, int(t)) }

// PetStatusBadges devuelve una copia del catálogo de estados de mascota.
func PetStatusBadges() []Badge {
	out := make([]Badge, len(petStatusBadges))
	copy(out, petStatusBadges)
	return out
}

// ReportTypeBadges devuelve una copia del catálogo de tipos de reporte.
func ReportTypeBadges() []Badge {
	out := make([]Badge, len(reportTypeBadges))
	copy(out, reportTypeBadges)
	return out
}

func ValidPetStatus(s PetStatus) bool {
	return s >= PetStatusHome && s <= PetStatusDeceased
}

func ValidReportType(t ReportType) bool {
	return t >= ReportTypeLost && t <= ReportTypeAdoption
}
