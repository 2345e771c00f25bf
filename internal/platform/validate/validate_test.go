package validate

import (
	"regexp"
	"strings"
	"testing"
)

func TestCheck_RequiredAndMinLen(t *testing.T) {
	errs := Check(
		Field{Name: "name", Value: "", Rules: []Rule{Required()}},
		Field{Name: "description", Value: "ok", Rules: []Rule{MinLen(10)}},
		Field{Name: "phone", Value: "71234567", Rules: []Rule{Required()}},
	)

	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %+v", len(errs), errs)
	}
	if errs[0].Field != "name" || !strings.Contains(errs[0].Message, "requerido") {
		t.Fatalf("unexpected first error: %+v", errs[0])
	}
	if errs[1].Field != "description" {
		t.Fatalf("unexpected second error: %+v", errs[1])
	}
}

func TestCheck_FirstErrorPerField(t *testing.T) {
	errs := Check(Field{Name: "email", Value: "", Rules: []Rule{Required(), Email()}})
	if len(errs) != 1 {
		t.Fatalf("expected a single error per field, got %d", len(errs))
	}
}

func TestPatternSkipsEmpty(t *testing.T) {
	re := regexp.MustCompile(`^\d+$`)
	if errs := Check(Field{Name: "reward_amount", Value: "", Rules: []Rule{Pattern(re)}}); len(errs) != 0 {
		t.Fatalf("pattern should not fire on empty optional value: %+v", errs)
	}
	if errs := Check(Field{Name: "reward_amount", Value: "abc", Rules: []Rule{Pattern(re)}}); len(errs) != 1 {
		t.Fatalf("expected pattern error: %+v", errs)
	}
}

func TestMin(t *testing.T) {
	if errs := Check(Field{Name: "reward_amount", Value: "", Rules: []Rule{Min(0)}}); len(errs) != 0 {
		t.Fatalf("min should not fire on empty optional value: %+v", errs)
	}
	if errs := Check(Field{Name: "reward_amount", Value: "-5", Rules: []Rule{Min(0)}}); len(errs) != 1 {
		t.Fatalf("expected min error for negative value: %+v", errs)
	}
	if errs := Check(Field{Name: "reward_amount", Value: "100", Rules: []Rule{Min(0)}}); len(errs) != 0 {
		t.Fatalf("unexpected min error: %+v", errs)
	}
}

func TestAggregate(t *testing.T) {
	errs := []FieldError{
		{Field: "name", Message: "El nombre de tu mascota es requerido"},
		{Field: "breed", Message: "La raza de tu mascota es requerido"},
	}
	msg := Aggregate(errs)
	if !strings.Contains(msg, "nombre") || !strings.Contains(msg, "raza") {
		t.Fatalf("aggregate missing parts: %q", msg)
	}
	if Aggregate(nil) != "" {
		t.Fatal("aggregate of no errors should be empty")
	}
}

func TestLabelFallback(t *testing.T) {
	if Label("phone") != "El teléfono" {
		t.Fatalf("known label: got %q", Label("phone"))
	}
	if Label("nope") != "nope" {
		t.Fatalf("unknown label should pass through, got %q", Label("nope"))
	}
}
