package pets

import "pet-registry/internal/domain/lifecycle"

// Catálogos estáticos para los selectores de la UI.
// Los ids son los que persisten los documentos; no renombrarlos.

type Color struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	HexCode  string `json:"hex_code"`
	IsCommon bool   `json:"is_common"`
}

var predefinedColors = []Color{
	{ID: "negro", Name: "Negro", HexCode: "#1a1a1a", IsCommon: true},
	{ID: "blanco", Name: "Blanco", HexCode: "#f5f5f5", IsCommon: true},
	{ID: "marron", Name: "Marrón", HexCode: "#6b4423", IsCommon: true},
	{ID: "dorado", Name: "Dorado", HexCode: "#d4a574", IsCommon: true},
	{ID: "gris", Name: "Gris", HexCode: "#808080", IsCommon: true},
	{ID: "beige", Name: "Beige", HexCode: "#d2b48c", IsCommon: true},

	{ID: "chocolate", Name: "Chocolate", HexCode: "#3d2817"},
	{ID: "crema", Name: "Crema", HexCode: "#fffacd"},
	{ID: "canela", Name: "Canela", HexCode: "#a0522d"},
	{ID: "naranja", Name: "Naranja", HexCode: "#ff8c42"},
	{ID: "rojizo", Name: "Rojizo", HexCode: "#8b4513"},
	{ID: "tricolor", Name: "Tricolor", HexCode: "linear-gradient(120deg, #1a1a1a 0%, #d4a574 50%, #f5f5f5 100%)"},
	{ID: "atigrado", Name: "Atigrado", HexCode: "linear-gradient(90deg, #6b4423 0%, #3d2817 25%, #6b4423 50%, #3d2817 75%, #6b4423 100%)"},
	{ID: "carey", Name: "Carey", HexCode: "linear-gradient(135deg, #3d2817 0%, #ff8c42 50%, #1a1a1a 100%)"},
	{ID: "azul_gris", Name: "Azul/Gris", HexCode: "#708090"},
	{ID: "plateado", Name: "Plateado", HexCode: "#c0c0c0"},
}

func Colors() []Color {
	out := make([]Color, len(predefinedColors))
	copy(out, predefinedColors)
	return out
}

// KnownColor reporta si el id existe en el catálogo.
func KnownColor(id string) bool {
	for _, c := range predefinedColors {
		if c.ID == id {
			return true
		}
	}
	return false
}

type FurType struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var furTypes = []FurType{
	{Value: "corto", Label: "Pelo corto", Description: "Menos de 2cm"},
	{Value: "mediano", Label: "Pelo mediano", Description: "2-5cm"},
	{Value: "largo", Label: "Pelo largo", Description: "Más de 5cm"},
	{Value: "rizado", Label: "Pelo rizado", Description: "Con ondas o rizos"},
	{Value: "liso", Label: "Pelo liso", Description: "Completamente liso"},
	{Value: "doble", Label: "Doble capa", Description: "Subpelo y pelo exterior"},
	{Value: "sin_pelo", Label: "Sin pelo", Description: "Raza sin pelaje"},
}

func FurTypes() []FurType {
	out := make([]FurType, len(furTypes))
	copy(out, furTypes)
	return out
}

type Breed struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Species lifecycle.Species `json:"species"`
	Size    string            `json:"size,omitempty"` // principalmente perros
}

var breeds = []Breed{
	{ID: "golden_retriever", Name: "Golden Retriever", Species: lifecycle.SpeciesDog, Size: "large"},
	{ID: "labrador_retriever", Name: "Labrador", Species: lifecycle.SpeciesDog, Size: "large"},
	{ID: "german_shepherd", Name: "Pastor Alemán", Species: lifecycle.SpeciesDog, Size: "large"},
	{ID: "french_bulldog", Name: "Bulldog Francés", Species: lifecycle.SpeciesDog, Size: "small"},
	{ID: "bulldog_english", Name: "Bulldog Inglés", Species: lifecycle.SpeciesDog, Size: "medium"},
	{ID: "poodle", Name: "Poodle", Species: lifecycle.SpeciesDog, Size: "small"},
	{ID: "beagle", Name: "Beagle", Species: lifecycle.SpeciesDog, Size: "medium"},
	{ID: "rottweiler", Name: "Rottweiler", Species: lifecycle.SpeciesDog, Size: "large"},
	{ID: "yorkshire_terrier", Name: "Yorkshire Terrier", Species: lifecycle.SpeciesDog, Size: "small"},
	{ID: "chihuahua", Name: "Chihuahua", Species: lifecycle.SpeciesDog, Size: "small"},
	{ID: "dachshund", Name: "Salchicha", Species: lifecycle.SpeciesDog, Size: "small"},
	{ID: "siberian_husky", Name: "Husky Siberiano", Species: lifecycle.SpeciesDog, Size: "large"},
	{ID: "border_collie", Name: "Border Collie", Species: lifecycle.SpeciesDog, Size: "medium"},
	{ID: "boxer", Name: "Boxer", Species: lifecycle.SpeciesDog, Size: "large"},
	{ID: "cocker_spaniel", Name: "Cocker Spaniel", Species: lifecycle.SpeciesDog, Size: "medium"},
	{ID: "mestizo", Name: "Mestizo", Species: lifecycle.SpeciesDog},

	{ID: "persian", Name: "Persa", Species: lifecycle.SpeciesCat},
	{ID: "maine_coon", Name: "Maine Coon", Species: lifecycle.SpeciesCat},
	{ID: "siamese", Name: "Siamés", Species: lifecycle.SpeciesCat},
	{ID: "ragdoll", Name: "Ragdoll", Species: lifecycle.SpeciesCat},
	{ID: "british_shorthair", Name: "Británico de Pelo Corto", Species: lifecycle.SpeciesCat},
	{ID: "abyssinian", Name: "Abisinio", Species: lifecycle.SpeciesCat},
	{ID: "bengal", Name: "Bengalí", Species: lifecycle.SpeciesCat},
	{ID: "russian_blue", Name: "Azul Ruso", Species: lifecycle.SpeciesCat},
	{ID: "scottish_fold", Name: "Scottish Fold", Species: lifecycle.SpeciesCat},
	{ID: "sphynx", Name: "Esfinge", Species: lifecycle.SpeciesCat},
	{ID: "munchkin", Name: "Munchkin", Species: lifecycle.SpeciesCat},
	{ID: "norwegian_forest", Name: "Bosque de Noruega", Species: lifecycle.SpeciesCat},
	{ID: "american_shorthair", Name: "Americano de Pelo Corto", Species: lifecycle.SpeciesCat},
	{ID: "oriental", Name: "Oriental", Species: lifecycle.SpeciesCat},
	{ID: "mestizo_cat", Name: "Mestizo", Species: lifecycle.SpeciesCat},
}

// BreedsBySpecies devuelve el catálogo de razas; species 0 = todas.
func BreedsBySpecies(species lifecycle.Species) []Breed {
	out := make([]Breed, 0, len(breeds))
	for _, b := range breeds {
		if species == 0 || b.Species == species {
			out = append(out, b)
		}
	}
	return out
}

// KnownBreed valida que la raza exista y corresponda a la especie.
func KnownBreed(id string, species lifecycle.Species) bool {
	for _, b := range breeds {
		if b.ID == id {
			return b.Species == species
		}
	}
	return false
}

// ValidColorSelection aplica la invariante de colores: la selección completa
// (primario + secundarios) tiene 1 a 3 entradas únicas y conocidas.
func ValidColorSelection(primary string, secondary []string) bool {
	if primary == "" || !KnownColor(primary) {
		return false
	}
	if len(secondary) > 2 {
		return false
	}

	seen := map[string]struct{}{primary: {}}
	for _, c := range secondary {
		if !KnownColor(c) {
			return false
		}
		if _, dup := seen[c]; dup {
			return false
		}
		seen[c] = struct{}{}
	}
	return len(seen) >= 1 && len(seen) <= 3
}
