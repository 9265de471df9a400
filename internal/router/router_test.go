package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-care-hub/internal/router"
)

func TestHTTP_EndToEnd_PetCareFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	userID := "1"

	// 1) Login demo: cualquier email produce el usuario fijo
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"email":    "demo@example.com",
			"password": "whatever",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
		var resp struct {
			User struct {
				ID    string `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.User.ID != "1" || resp.User.Email != "demo@example.com" {
			t.Fatalf("unexpected login user: %s", string(body))
		}
	}

	// 2) Sin identidad no hay registro
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without identity, got %d", st)
		}
	}

	// 3) Alta de mascota
	petID := createPet(t, ts.URL, userID, map[string]any{
		"name":   "Milo",
		"type":   "dog",
		"breed":  "beagle",
		"age":    4,
		"weight": 12.5,
	})

	// 4) Tipo inválido => 400, sin registro parcial
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets", userID, map[string]any{
			"name": "Dragon", "type": "dragon",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown pet type, got %d", st)
		}
	}

	// 5) Búsqueda por substring y filtro por tipo
	{
		st, body := doReq(t, ts.URL, "GET", "/pets?q=mil&type=dog", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 search, got %d body=%s", st, string(body))
		}
		var list []map[string]any
		_ = json.Unmarshal(body, &list)
		if len(list) != 1 {
			t.Fatalf("expected 1 search hit, got %s", string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/pets?q=mil&type=cat", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 search, got %d", st)
		}
		_ = json.Unmarshal(body, &list)
		if len(list) != 0 {
			t.Fatalf("expected 0 hits for wrong type, got %s", string(body))
		}
	}

	// 6) PATCH parcial
	{
		st, body := doReq(t, ts.URL, "PATCH", "/pets/"+petID, userID, map[string]any{
			"name": "Milo Updated",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch pet, got %d body=%s", st, string(body))
		}
	}

	// 7) Favorito: dos toggles vuelven al estado original
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/favorite", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 toggle, got %d", st)
		}
		var p struct {
			Favorite bool `json:"favorite"`
		}
		_ = json.Unmarshal(body, &p)
		if !p.Favorite {
			t.Fatalf("expected favorite=true after first toggle, got %s", string(body))
		}

		st, body = doReq(t, ts.URL, "POST", "/pets/"+petID+"/favorite", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 toggle, got %d", st)
		}
		_ = json.Unmarshal(body, &p)
		if p.Favorite {
			t.Fatalf("expected favorite=false after second toggle, got %s", string(body))
		}
	}

	// 8) Vacunación: la próxima fecha se deriva del tipo
	vaccinationID := ""
	{
		st, body := doReq(t, ts.URL, "POST", "/vaccinations", userID, map[string]any{
			"pet_id":           petID,
			"type":             "parasites",
			"vaccination_date": "2024-01-15",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create vaccination, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID                  string  `json:"id"`
			PetName             string  `json:"pet_name"`
			NextVaccinationDate *string `json:"next_vaccination_date"`
			Status              string  `json:"status"`
		}
		_ = json.Unmarshal(body, &resp)
		vaccinationID = resp.ID
		if resp.NextVaccinationDate == nil || *resp.NextVaccinationDate != "2024-04-15" {
			t.Fatalf("expected derived next date 2024-04-15, got %s", string(body))
		}
		if resp.PetName != "Milo Updated" || resp.Status != "scheduled" {
			t.Fatalf("unexpected vaccination: %s", string(body))
		}
	}

	// 9) Vacunación contra mascota inexistente => 404, nada creado
	{
		st, _ := doReq(t, ts.URL, "POST", "/vaccinations", userID, map[string]any{
			"pet_id":           "missing",
			"type":             "rabies",
			"vaccination_date": "2024-01-15",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown pet, got %d", st)
		}
	}

	// 10) Campos requeridos faltantes => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/vaccinations", userID, map[string]any{
			"pet_id": petID, "type": "rabies",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing date, got %d", st)
		}
	}

	// 11) El plan clasifica urgencia (fecha 2024 ya pasó => overdue)
	{
		st, body := doReq(t, ts.URL, "GET", "/vaccinations/schedule", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 schedule, got %d", st)
		}
		var entries []struct {
			ID      string `json:"id"`
			Urgency string `json:"urgency"`
		}
		_ = json.Unmarshal(body, &entries)
		if len(entries) != 1 || entries[0].Urgency != "overdue" {
			t.Fatalf("expected one overdue entry, got %s", string(body))
		}
	}

	// 12) Cambio de status
	{
		st, body := doReq(t, ts.URL, "POST", "/vaccinations/"+vaccinationID+"/status", userID, map[string]any{
			"status": "completed",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 set status, got %d body=%s", st, string(body))
		}

		st, _ = doReq(t, ts.URL, "POST", "/vaccinations/"+vaccinationID+"/status", userID, map[string]any{
			"status": "pending",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad status, got %d", st)
		}
	}

	// 13) Bajas
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/vaccinations/"+vaccinationID, userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete vaccination, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/vaccinations/"+vaccinationID, userID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 deleting twice, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "DELETE", "/pets/"+petID, userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete pet, got %d", st)
		}
	}

	// 14) Perfil y logout
	{
		st, body := doReq(t, ts.URL, "PATCH", "/me", userID, map[string]any{
			"phone": "+380501112233",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch profile, got %d body=%s", st, string(body))
		}

		st, _ = doReq(t, ts.URL, "POST", "/auth/logout", userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 logout, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "GET", "/me", userID, nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 after logout, got %d", st)
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

func createPet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
