package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"applause-ledger/internal/adapters/storage/kvrepo"
	"applause-ledger/internal/adapters/storage/memory"
	"applause-ledger/internal/domain/legacy"
	"applause-ledger/internal/domain/people"
	"applause-ledger/internal/platform/logger"
	"applause-ledger/internal/ports/notify"
	"applause-ledger/internal/router"
	"applause-ledger/internal/seed"
)

var seedTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type captureSink struct {
	mu     sync.Mutex
	events []notify.Event
}

func (c *captureSink) Notify(_ context.Context, e notify.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *captureSink) types() []notify.EventType {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]notify.EventType, 0, len(c.events))
	for _, e := range c.events {
		out = append(out, e.Type)
	}
	return out
}

type personBody struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ApplauseCount int    `json:"applause_count"`
	FoodBrought   int    `json:"food_brought"`
	PendingFood   bool   `json:"pending_food"`
}

type applauseBody struct {
	Person      personBody `json:"person"`
	Celebration bool       `json:"celebration"`
}

type entryBody struct {
	ID     string `json:"id"`
	Actor  string `json:"actor"`
	Target string `json:"target"`
	Action string `json:"action"`
}

func newServer(t *testing.T) (*httptest.Server, *captureSink) {
	t.Helper()
	store := memory.NewStore()
	if _, err := seed.EnsureSampleData(context.Background(), people.NewService(kvrepo.NewPeopleRepo(store)), nil, seedTime); err != nil {
		t.Fatalf("seed: %v", err)
	}

	sink := &captureSink{}
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Store:  store,
		Logger: logger.Nop(),
		Sink:   sink,
	}))
	t.Cleanup(ts.Close)
	return ts, sink
}

func TestHTTP_EndToEnd_CelebrationFlow(t *testing.T) {
	ts, sink := newServer(t)

	// 1) Luis (id 4) tiene 14: un aplauso más dispara la celebración
	{
		st, body := doReq(t, ts.URL, "POST", "/people/4/applause", "Ana Martínez", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 grant, got %d body=%s", st, string(body))
		}
		var res applauseBody
		mustDecode(t, body, &res)
		if !res.Celebration || res.Person.ApplauseCount != 0 || res.Person.FoodBrought != 4 || !res.Person.PendingFood {
			t.Fatalf("unexpected rollover result: %+v", res)
		}
	}

	// 2) Quitar sobre 0 no hace nada
	{
		st, body := doReq(t, ts.URL, "POST", "/people/4/applause/revoke", "", map[string]any{"actor": "Ana Martínez"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 revoke, got %d body=%s", st, string(body))
		}
		var res applauseBody
		mustDecode(t, body, &res)
		if res.Person.ApplauseCount != 0 {
			t.Fatalf("expected count to stay 0, got %d", res.Person.ApplauseCount)
		}
	}

	// 3) Aparece en pendientes
	{
		st, body := doReq(t, ts.URL, "GET", "/people?pending=true", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list pending, got %d body=%s", st, string(body))
		}
		var list []personBody
		mustDecode(t, body, &list)
		if !containsID(list, "4") || !containsID(list, "5") || len(list) != 2 {
			t.Fatalf("unexpected pending list: %+v", list)
		}
	}

	// 4) Confirma la comida
	{
		st, body := doReq(t, ts.URL, "POST", "/people/4/treat/ack", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 ack, got %d body=%s", st, string(body))
		}
		var res applauseBody
		mustDecode(t, body, &res)
		if res.Person.PendingFood || res.Person.FoodBrought != 4 {
			t.Fatalf("unexpected ack result: %+v", res.Person)
		}
	}

	// 5) Historial recibido: una sola entrada (el revoke sobre 0 no cuenta)
	{
		st, body := doReq(t, ts.URL, "GET", "/people/4/history", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 history, got %d body=%s", st, string(body))
		}
		var entries []entryBody
		mustDecode(t, body, &entries)
		if len(entries) != 1 || entries[0].Action != "grant" || entries[0].Actor != "Ana Martínez" {
			t.Fatalf("unexpected history: %+v", entries)
		}
	}

	// 6) Historial dado por Ana (id 3)
	{
		st, body := doReq(t, ts.URL, "GET", "/people/3/given-history", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 given history, got %d body=%s", st, string(body))
		}
		var entries []entryBody
		mustDecode(t, body, &entries)
		if len(entries) != 1 || entries[0].Target != "4" {
			t.Fatalf("unexpected given history: %+v", entries)
		}
	}

	got := sink.types()
	want := []notify.EventType{notify.EventApplause, notify.EventFoodBrought}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("unexpected notifications: %v", got)
	}
}

type legacyPersonBody struct {
	ID            string `json:"id"`
	Photo         string `json:"photo"`
	ApplauseCount int    `json:"applauseCount"`
	FoodBrought   int    `json:"foodBrought"`
	PendingFood   bool   `json:"pendingFood"`
}

type legacyHistoryBody struct {
	History []struct {
		From   string `json:"from"`
		To     string `json:"to"`
		ToName string `json:"toName"`
		Date   string `json:"date"`
		Action string `json:"action"`
	} `json:"history"`
}

// mustPersonKeys falla si la persona no viene con las keys que lee el frontend.
func mustPersonKeys(t *testing.T, person any) {
	t.Helper()
	obj, ok := person.(map[string]any)
	if !ok {
		t.Fatalf("expected person object, got %T", person)
	}
	for _, k := range []string{"id", "name", "position", "photo", "applauseCount", "foodBrought", "pendingFood", "lastApplause"} {
		if _, ok := obj[k]; !ok {
			t.Fatalf("person missing key %q: %v", k, obj)
		}
	}
	for _, k := range []string{"applause_count", "food_brought", "pending_food", "photo_url"} {
		if _, ok := obj[k]; ok {
			t.Fatalf("person has snake_case key %q: %v", k, obj)
		}
	}
}

func TestHTTP_LegacyRoutes(t *testing.T) {
	ts, _ := newServer(t)

	for _, base := range []string{"", legacy.BasePath} {
		st, body := doReq(t, ts.URL, "POST", base+"/applause", "", map[string]any{"personId": "3", "givenBy": "Luis Fernández"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 legacy applause at %q, got %d body=%s", base, st, string(body))
		}
		var raw map[string]any
		mustDecode(t, body, &raw)
		mustPersonKeys(t, raw["person"])
		if c, ok := raw["celebration"]; !ok || c != false {
			t.Fatalf("expected celebration=false, got %v", raw)
		}

		st, body = doReq(t, ts.URL, "POST", base+"/remove-applause", "", map[string]any{"personId": "3", "removedBy": "Luis Fernández"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 legacy remove at %q, got %d body=%s", base, st, string(body))
		}
		var res struct {
			Person legacyPersonBody `json:"person"`
		}
		mustDecode(t, body, &res)
		if res.Person.ApplauseCount != 3 {
			t.Fatalf("expected 3 after remove, got %+v", res.Person)
		}
	}

	st, body := doReq(t, ts.URL, "POST", "/applause", "", map[string]any{"personId": "3"})
	if st != http.StatusBadRequest || !strings.Contains(string(body), `"error"`) {
		t.Fatalf("expected 400 json error for missing givenBy, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "POST", "/mark-food-brought/5", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 legacy ack, got %d body=%s", st, string(body))
	}
	var acked struct {
		Person legacyPersonBody `json:"person"`
	}
	mustDecode(t, body, &acked)
	if acked.Person.PendingFood || acked.Person.Photo == "" {
		t.Fatalf("unexpected ack result: %+v", acked.Person)
	}

	// GET /people -> {people:[...]}
	st, body = doReq(t, ts.URL, "GET", legacy.BasePath+"/people", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 legacy list, got %d", st)
	}
	var list struct {
		People []map[string]any `json:"people"`
	}
	mustDecode(t, body, &list)
	if len(list.People) != 5 {
		t.Fatalf("expected 5 people, got %s", string(body))
	}
	for _, p := range list.People {
		mustPersonKeys(t, p)
	}

	st, body = doReq(t, ts.URL, "GET", legacy.BasePath+"/people/3", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 legacy get, got %d", st)
	}
	var one map[string]any
	mustDecode(t, body, &one)
	mustPersonKeys(t, one["person"])

	st, body = doReq(t, ts.URL, "GET", legacy.BasePath+"/people/999", "", nil)
	if st != http.StatusNotFound || !strings.Contains(string(body), "Person not found") {
		t.Fatalf("expected 404 legacy get, got %d body=%s", st, string(body))
	}

	// historial recibido: dos "+1" y dos "-1", más nuevo primero
	st, body = doReq(t, ts.URL, "GET", legacy.BasePath+"/people/3/history", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 legacy history, got %d", st)
	}
	var hist legacyHistoryBody
	mustDecode(t, body, &hist)
	if len(hist.History) != 4 {
		t.Fatalf("expected 4 entries, got %s", string(body))
	}
	actions := map[string]int{}
	for _, h := range hist.History {
		if h.From != "Luis Fernández" || h.To != "3" || h.ToName != "Ana Martínez" || h.Date == "" {
			t.Fatalf("unexpected legacy entry: %+v", h)
		}
		actions[h.Action]++
	}
	if actions["+1"] != 2 || actions["-1"] != 2 {
		t.Fatalf("expected +1/-1 actions, got %v", actions)
	}

	st, body = doReq(t, ts.URL, "GET", legacy.BasePath+"/people/4/given-history", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 legacy given history, got %d", st)
	}
	mustDecode(t, body, &hist)
	if len(hist.History) != 4 || hist.History[0].To != "3" {
		t.Fatalf("unexpected given history: %s", string(body))
	}

	// la API nueva sigue en snake_case
	st, body = doReq(t, ts.URL, "GET", "/people/3", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"applause_count"`) {
		t.Fatalf("expected snake_case person on new API, got %d body=%s", st, string(body))
	}
}

func TestHTTP_Errors(t *testing.T) {
	ts, sink := newServer(t)

	cases := []struct {
		name, method, path, actor string
		body                      any
		want                      int
	}{
		{"grant without actor", "POST", "/people/1/applause", "", nil, http.StatusBadRequest},
		{"grant unknown person", "POST", "/people/999/applause", "Ana", nil, http.StatusNotFound},
		{"revoke unknown person", "POST", "/people/999/applause/revoke", "Ana", nil, http.StatusNotFound},
		{"ack unknown person", "POST", "/people/999/treat/ack", "", nil, http.StatusNotFound},
		{"get unknown person", "GET", "/people/999", "", nil, http.StatusNotFound},
		{"given history unknown person", "GET", "/people/999/given-history", "", nil, http.StatusNotFound},
		{"bad pending flag", "GET", "/people?pending=maybe", "", nil, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, body := doReq(t, ts.URL, tc.method, tc.path, tc.actor, tc.body)
			if st != tc.want {
				t.Fatalf("expected %d, got %d body=%s", tc.want, st, string(body))
			}
		})
	}

	if got := sink.types(); len(got) != 0 {
		t.Fatalf("expected no notifications on errors, got %v", got)
	}
}

func TestHTTP_HistoryOfUnknownPersonIsEmpty(t *testing.T) {
	ts, _ := newServer(t)

	st, body := doReq(t, ts.URL, "GET", "/people/999/history", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if strings.TrimSpace(string(body)) != "[]" {
		t.Fatalf("expected empty array, got %s", string(body))
	}
}

func TestHTTP_ListSortedByApplause(t *testing.T) {
	ts, _ := newServer(t)

	st, body := doReq(t, ts.URL, "GET", "/people", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var list []personBody
	mustDecode(t, body, &list)
	if len(list) != 5 || list[0].ID != "4" || list[len(list)-1].ID != "3" {
		t.Fatalf("unexpected order: %+v", list)
	}
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	ts, _ := newServer(t)

	if st, _ := doReq(t, ts.URL, "GET", "/health", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}

	if st, _ := doReq(t, ts.URL, "POST", "/people/1/applause", "Ana", nil); st != http.StatusOK {
		t.Fatalf("expected 200 grant, got %d", st)
	}

	st, body := doReq(t, ts.URL, "GET", "/metrics", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !strings.Contains(string(body), "applause_grants_total 1") {
		t.Fatalf("expected grants counter in metrics output")
	}
}

func doReq(t *testing.T, baseURL, method, path, actor string, body any) (int, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor != "" {
		req.Header.Set("X-Actor-Name", actor)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out
}

func mustDecode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode %s: %v", string(body), err)
	}
}

func containsID(list []personBody, id string) bool {
	for _, p := range list {
		if p.ID == id {
			return true
		}
	}
	return false
}
