package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Reglas declarativas por campo, al estilo de los formularios del cliente:
// cada campo lista sus constraints y el resultado es un mensaje por campo
// o un agregado para mostrar en un toast.

type Rule func(value string) string

// Required exige valor no vacío.
func Required() Rule {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return "es requerido"
		}
		return ""
	}
}

// MinLen exige un largo mínimo.
func MinLen(n int) Rule {
	return func(v string) string {
		if v != "" && len(strings.TrimSpace(v)) < n {
			return fmt.Sprintf("debe tener al menos %d caracteres", n)
		}
		return ""
	}
}

// Min exige un valor numérico mayor o igual a n (si no está vacío).
func Min(n float64) Rule {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return ""
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || parsed < n {
			return fmt.Sprintf("debe ser al menos %v", n)
		}
		return ""
	}
}

// Pattern exige que el valor matchee la regex (si no está vacío).
func Pattern(re *regexp.Regexp) Rule {
	return func(v string) string {
		if v != "" && !re.MatchString(v) {
			return "formato inválido"
		}
		return ""
	}
}

// Email es un Pattern preconstruido.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func Email() Rule {
	return Pattern(emailRe)
}

// Field asocia un nombre de campo con sus reglas.
type Field struct {
	Name  string
	Value string
	Rules []Rule
}

// FieldError es un error de validación con el label humano del campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Check corre todas las reglas y devuelve los errores por campo.
// Devuelve el primer error de cada campo (como los forms del cliente).
func Check(fields ...Field) []FieldError {
	var errs []FieldError
	for _, f := range fields {
		for _, rule := range f.Rules {
			if msg := rule(f.Value); msg != "" {
				errs = append(errs, FieldError{
					Field:   f.Name,
					Message: fmt.Sprintf("%s %s", Label(f.Name), msg),
				})
				break
			}
		}
	}
	return errs
}

// Aggregate arma un único mensaje para toast a partir de los errores.
func Aggregate(errs []FieldError) string {
	if len(errs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Message)
	}
	return strings.Join(parts, ". ")
}

// Diccionario estático de labels, heredado del cliente.
var fieldLabels = map[string]string{
	"name":               "El nombre de tu mascota",
	"species":            "El tipo de mascota",
	"breed":              "La raza de tu mascota",
	"birth_date":         "La fecha de nacimiento",
	"gender":             "El género de tu mascota",
	"description":        "La descripción de tu mascota",
	"fur_type":           "El tipo de pelo",
	"color_primary":      "El color predominante",
	"color_secondary":    "Los colores secundarios",
	"email":              "El email",
	"phone":              "El teléfono",
	"address":            "La dirección",
	"status":             "El estado",
	"pet_id":             "Mascota",
	"incident_date":      "Fecha del incidente",
	"incident_time":      "Hora del incidente",
	"last_seen_location": "Ubicación",
	"circumstances":      "Circunstancias",
	"reward_amount":      "Recompensa",
	"reporter_name":      "El nombre de contacto",
	"sighting_date":      "Fecha del avistamiento",
	"sighting_location":  "Ubicación del avistamiento",
}

// Label devuelve el label humano de un campo, o el nombre crudo si no existe.
func Label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}
