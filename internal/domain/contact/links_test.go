package contact

import (
	"strings"
	"testing"
)

func TestValidPhone(t *testing.T) {
	valid := []string{"71234567", "61234567", "+59171234567", "7123 4567"}
	for _, p := range valid {
		if !ValidPhone(p) {
			t.Fatalf("expected valid phone: %q", p)
		}
	}

	invalid := []string{"", "81234567", "7123456", "712345678", "+5917123456"}
	for _, p := range invalid {
		if ValidPhone(p) {
			t.Fatalf("expected invalid phone: %q", p)
		}
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+591 71234567", "Hola! ¿cómo estás?")
	if !strings.HasPrefix(link, "https://wa.me/59171234567?text=") {
		t.Fatalf("unexpected link: %q", link)
	}
	if strings.ContainsAny(link, " ¿") {
		t.Fatalf("message not escaped: %q", link)
	}

	if got := WhatsAppLink("71234567", ""); got != "https://wa.me/71234567" {
		t.Fatalf("link without message: %q", got)
	}
}

func TestEmailLink(t *testing.T) {
	link := EmailLink("owner@example.com", "Consulta sobre Milo", "Hola,\nsaludos")
	if !strings.HasPrefix(link, "mailto:owner@example.com?subject=") {
		t.Fatalf("unexpected link: %q", link)
	}
	if !strings.Contains(link, "&body=") {
		t.Fatalf("missing body: %q", link)
	}

	if got := EmailLink("owner@example.com", "", ""); got != "mailto:owner@example.com" {
		t.Fatalf("plain mailto: %q", got)
	}
}

func TestPhoneLink(t *testing.T) {
	if got := PhoneLink("71234567"); got != "tel:71234567" {
		t.Fatalf("tel link: %q", got)
	}
}
