package history

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// PersonNameLookup evita importar people.
// found=false con err=nil significa que la persona no existe.
type PersonNameLookup interface {
	NameOf(ctx context.Context, personID string) (name string, found bool, err error)
}

func RegisterRoutes(r chi.Router, svc *Service, names PersonNameLookup) {
	r.Get("/people/{personID}/history", receivedHistoryHandler(svc))
	r.Get("/people/{personID}/given-history", givenHistoryHandler(svc, names))
}

// EntryResponse es una entrada del historial tal como sale por HTTP.
type EntryResponse struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Actor      string    `json:"actor"`
	Target     string    `json:"target"`
	TargetName string    `json:"target_name"`
	Action     Action    `json:"action" enums:"grant,revoke"`
}

func ToEntryResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:         e.ID,
		Timestamp:  e.Timestamp,
		Actor:      e.Actor,
		Target:     e.Target,
		TargetName: e.TargetName,
		Action:     e.Action,
	}
}

// receivedHistoryHandler godoc
// @Summary Historial recibido
// @Description Últimas entradas (más nuevas primero) donde la persona es el destinatario.
// @Tags history
// @Produce json
// @Param personID path string true "ID de la persona"
// @Param limit query int false "Máximo de entradas (1-100). Por defecto 20"
// @Success 200 {array} EntryResponse
// @Failure 500 {string} string "internal error"
// @Router /people/{personID}/history [get]
func receivedHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Received(r.Context(), chi.URLParam(r, "personID"), parseLimit(r))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "person id required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

// givenHistoryHandler godoc
// @Summary Historial dado
// @Description Últimas entradas (más nuevas primero) donde la persona fue quien dio o quitó el aplauso.
// @Tags history
// @Produce json
// @Param personID path string true "ID de la persona"
// @Param limit query int false "Máximo de entradas (1-100). Por defecto 20"
// @Success 200 {array} EntryResponse
// @Failure 404 {string} string "person not found"
// @Failure 500 {string} string "internal error"
// @Router /people/{personID}/given-history [get]
func givenHistoryHandler(svc *Service, names PersonNameLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, found, err := names.NameOf(r.Context(), chi.URLParam(r, "personID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !found {
			http.Error(w, "person not found", http.StatusNotFound)
			return
		}

		items, err := svc.Given(r.Context(), name, parseLimit(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

func parseLimit(r *http.Request) int {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

func toResponses(items []Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(items))
	for _, e := range items {
		out = append(out, ToEntryResponse(e))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
