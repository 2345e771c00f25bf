package contact

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Links salientes para contactar al dueño de una mascota.
// Se generan, no se llaman: la UI los abre como deep links.

var (
	phoneRe    = regexp.MustCompile(`^(\+591)?[67]\d{7}$`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

// ValidPhone valida un celular boliviano (con o sin +591).
func ValidPhone(phone string) bool {
	return phoneRe.MatchString(strings.ReplaceAll(phone, " ", ""))
}

// WhatsAppLink arma un deep link wa.me con mensaje prellenado opcional.
func WhatsAppLink(phone, message string) string {
	clean := nonDigitRe.ReplaceAllString(phone, "")
	if message == "" {
		return "https://wa.me/" + clean
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", clean, url.QueryEscape(message))
}

// PhoneLink arma un link tel: para el marcador.
func PhoneLink(phone string) string {
	return "tel:" + phone
}

// EmailLink arma un mailto: con subject/body opcionales.
func EmailLink(email, subject, body string) string {
	var params []string
	if subject != "" {
		params = append(params, "subject="+url.QueryEscape(subject))
	}
	if body != "" {
		params = append(params, "body="+url.QueryEscape(body))
	}
	if len(params) == 0 {
		return "mailto:" + email
	}
	return "mailto:" + email + "?" + strings.Join(params, "&")
}

// Mensajes prellenados según el contexto de la mascota.

func WhatsAppMessageAdoption(petName string) string {
	return fmt.Sprintf("Hola! Me interesa adoptar a %s. ¿Podemos conversar sobre los detalles?", petName)
}

func WhatsAppMessageInfo(petName string) string {
	return fmt.Sprintf("Hola! He visto información sobre %s. Quisiera obtener más información.", petName)
}

func EmailSubjectAdoption(petName string) string {
	return fmt.Sprintf("Interés en adoptar a %s", petName)
}

func EmailBodyAdoption(ownerName, petName string) string {
	return fmt.Sprintf("Hola %s,\n\nMe interesa adoptar a %s. Me gustaría coordinar una visita y conocer más detalles sobre el proceso de adopción.\n\nGracias por tu tiempo.", ownerName, petName)
}

func EmailSubjectInfo(petName string) string {
	return fmt.Sprintf("Consulta sobre %s", petName)
}

func EmailBodyInfo(ownerName, petName string) string {
	return fmt.Sprintf("Hola %s,\n\nHe visto la información sobre %s y me gustaría obtener más detalles.\n\nSaludos.", ownerName, petName)
}
