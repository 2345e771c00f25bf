package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-registry/internal/router"
)

func TestHTTP_EndToEnd_LostAndFoundFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"
	strangerID := "stranger-1"

	// 1) Owner registra su perfil y teléfono de contacto
	{
		st, body := doReq(t, ts.URL, "GET", "/me/profile", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 ensure profile, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "PATCH", "/me/profile", ownerID, map[string]any{
			"name":  "Fernanda",
			"phone": "+59171234567",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch profile, got %d body=%s", st, string(body))
		}
	}

	// 2) Owner registra mascota; nace en casa
	petID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":          "Milo",
		"species":       1,
		"breed_id":      "mestizo",
		"birth_date":    "2022-03-10",
		"gender":        1,
		"color_primary": "negro",
	})
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
		}
		var p struct {
			CurrentStatus int `json:"current_status"`
			StatusBadge   struct {
				Label string `json:"label"`
			} `json:"status_badge"`
		}
		mustUnmarshal(t, body, &p)
		if p.CurrentStatus != 1 || p.StatusBadge.Label != "En casa" {
			t.Fatalf("expected pet at home, got %+v", p)
		}
	}

	// 3) Owner publica reporte de pérdida; la mascota pasa a perdida
	reportID := ""
	{
		st, body := doReq(t, ts.URL, "POST", "/reports", ownerID, map[string]any{
			"pet_id":             petID,
			"report_type":        1,
			"incident_date":      "2026-08-20",
			"incident_time":      "18:30",
			"last_seen_location": "Parque Central, Oruro",
			"latitude":           -17.9647,
			"longitude":          -67.1060,
			"reward_amount":      100,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 submit report, got %d body=%s", st, string(body))
		}
		var rep struct {
			ID     string `json:"id"`
			Status int    `json:"status"`
		}
		mustUnmarshal(t, body, &rep)
		if rep.Status != 1 {
			t.Fatalf("expected active report, got %d", rep.Status)
		}
		reportID = rep.ID

		st, body = doReq(t, ts.URL, "GET", "/pets/"+petID, ownerID, nil)
		var p struct {
			CurrentStatus int `json:"current_status"`
		}
		mustUnmarshal(t, body, &p)
		if st != http.StatusOK || p.CurrentStatus != 2 {
			t.Fatalf("expected pet lost after submit, got %d status=%d", p.CurrentStatus, st)
		}
	}

	// 4) Segundo reporte sobre la misma mascota se rechaza
	{
		st, _ := doReq(t, ts.URL, "POST", "/reports", ownerID, map[string]any{
			"pet_id":             petID,
			"report_type":        1,
			"incident_date":      "2026-08-21",
			"last_seen_location": "Otra esquina de Oruro",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate report, got %d", st)
		}
	}

	// 5) Un tercero sin cuenta reporta un avistamiento con distancia derivada
	{
		st, body := doReq(t, ts.URL, "POST", "/reports/"+reportID+"/sightings", "", map[string]any{
			"reporter_name":    "Vecina Ana",
			"reporter_phone":   "+59176543210",
			"sighting_date":    "2026-08-21",
			"sighting_time":    "09:15",
			"latitude":         -17.9700,
			"longitude":        -67.1100,
			"confidence_level": 4,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 sighting, got %d body=%s", st, string(body))
		}
		var sg struct {
			DistanceFromLastSeen float64 `json:"distance_from_last_seen"`
			SightingLocation     string  `json:"sighting_location"`
			Status               int     `json:"status"`
		}
		mustUnmarshal(t, body, &sg)
		if sg.DistanceFromLastSeen <= 0 {
			t.Fatalf("expected derived distance > 0, got %v", sg.DistanceFromLastSeen)
		}
		if sg.SightingLocation == "" {
			t.Fatal("expected sighting location fallback, got empty")
		}
		if sg.Status != 1 {
			t.Fatalf("expected sighting status new, got %d", sg.Status)
		}
	}

	// 6) Un extraño no puede tocar la mascota ajena; el estado no cambia
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/adoption", strangerID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 adoption by stranger, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, ownerID, nil)
		var p struct {
			CurrentStatus int `json:"current_status"`
		}
		mustUnmarshal(t, body, &p)
		if st != http.StatusOK || p.CurrentStatus != 2 {
			t.Fatalf("expected pet still lost, got status=%d", p.CurrentStatus)
		}
	}

	// 7) El contacto del dueño sale con links armados
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/contact", strangerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 contact, got %d body=%s", st, string(body))
		}
		var c struct {
			WhatsApp string `json:"whatsapp"`
			Phone    string `json:"phone"`
		}
		mustUnmarshal(t, body, &c)
		if !strings.HasPrefix(c.WhatsApp, "https://wa.me/") {
			t.Fatalf("expected wa.me link, got %q", c.WhatsApp)
		}
		if !strings.HasPrefix(c.Phone, "tel:") {
			t.Fatalf("expected tel link, got %q", c.Phone)
		}
	}

	// 8) markSafe: la mascota vuelve a casa y el reporte queda resuelto
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/safe", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 mark safe, got %d body=%s", st, string(body))
		}
		var out struct {
			CurrentStatus int `json:"current_status"`
		}
		mustUnmarshal(t, body, &out)
		if out.CurrentStatus != 1 {
			t.Fatalf("expected pet home after safe, got %d", out.CurrentStatus)
		}

		st, body = doReq(t, ts.URL, "GET", "/reports/"+reportID, ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get report, got %d body=%s", st, string(body))
		}
		var rep struct {
			Status     int     `json:"status"`
			ResolvedAt *string `json:"resolved_at"`
		}
		mustUnmarshal(t, body, &rep)
		if rep.Status != 2 {
			t.Fatalf("expected resolved report, got %d", rep.Status)
		}
		if rep.ResolvedAt == nil || *rep.ResolvedAt == "" {
			t.Fatal("expected resolved_at set")
		}
	}

	// 9) Las estadísticas reflejan el ciclo completo
	{
		st, body := doReq(t, ts.URL, "GET", "/reports/stats", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 stats, got %d body=%s", st, string(body))
		}
		var stats struct {
			Total    int `json:"total"`
			Resolved int `json:"resolved"`
			LostPets int `json:"lost_pets"`
		}
		mustUnmarshal(t, body, &stats)
		if stats.Total != 1 || stats.Resolved != 1 || stats.LostPets != 1 {
			t.Fatalf("unexpected stats: %+v", stats)
		}
	}
}

func TestHTTP_ImageUpload_RespectsReportCap(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-2"
	petID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":          "Luna",
		"species":       2,
		"breed_id":      "mestizo_cat",
		"birth_date":    "2023-05-01",
		"gender":        2,
		"color_primary": "blanco",
	})

	st, body := doReq(t, ts.URL, "POST", "/reports", ownerID, map[string]any{
		"pet_id":             petID,
		"report_type":        1,
		"incident_date":      "2026-08-25",
		"last_seen_location": "Av. 6 de Agosto, Oruro",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 submit, got %d body=%s", st, string(body))
	}
	var rep struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, body, &rep)

	// 4 fotos contra un tope de 3: entran 3, la cuarta se rechaza con mensaje
	st, body = uploadImages(t, ts.URL, "/reports/"+rep.ID+"/images", ownerID, []string{"a.png", "b.png", "c.png", "d.png"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 upload, got %d body=%s", st, string(body))
	}
	var out struct {
		URLs         []string `json:"urls"`
		Rejected     []string `json:"rejected"`
		ErrorMessage string   `json:"error_message"`
		Images       []string `json:"images"`
	}
	mustUnmarshal(t, body, &out)
	if len(out.URLs) != 3 || len(out.Images) != 3 {
		t.Fatalf("expected 3 accepted photos, got urls=%d images=%d", len(out.URLs), len(out.Images))
	}
	if len(out.Rejected) != 1 || out.Rejected[0] != "d.png" {
		t.Fatalf("expected d.png rejected, got %+v", out.Rejected)
	}
	if !strings.Contains(out.ErrorMessage, "Máximo 3 fotos") {
		t.Fatalf("expected message naming the cap, got %q", out.ErrorMessage)
	}

	// un extraño no puede subir fotos al reporte ajeno
	st, _ = uploadImages(t, ts.URL, "/reports/"+rep.ID+"/images", "stranger-2", []string{"x.png"})
	if st != http.StatusForbidden {
		t.Fatalf("expected 403 upload by stranger, got %d", st)
	}
}

func createPet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/pets", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}
	var p struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, body, &p)
	if p.ID == "" {
		t.Fatal("create pet: empty id")
	}
	return p.ID
}

func doReq(t *testing.T, baseURL, method, path, userID string, payload map[string]any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-Debug-User-ID", userID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, raw
}

func uploadImages(t *testing.T, baseURL, path, userID string, names []string) (int, []byte) {
	t.Helper()

	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range names {
		fw, err := mw.CreateFormFile("images", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(png); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req, err := http.NewRequest("POST", baseURL+path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if userID != "" {
		req.Header.Set("X-Debug-User-ID", userID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, raw
}

func mustUnmarshal(t *testing.T, raw []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("unmarshal %q: %v", string(raw), err)
	}
}
