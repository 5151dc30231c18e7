package people

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/people", listPeopleHandler(svc))
	r.Get("/people/{personID}", getPersonHandler(svc))
}

// PersonResponse es la representación pública de una persona.
// La exporta el paquete porque applause devuelve la persona actualizada.
type PersonResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Position       string     `json:"position"`
	PhotoURL       string     `json:"photo_url"`
	ApplauseCount  int        `json:"applause_count"`
	FoodBrought    int        `json:"food_brought"`
	PendingFood    bool       `json:"pending_food"`
	LastApplauseAt *time.Time `json:"last_applause_at,omitempty"`
}

func ToPersonResponse(p Person) PersonResponse {
	return PersonResponse{
		ID:             p.ID,
		Name:           p.Name,
		Position:       p.Position,
		PhotoURL:       p.PhotoURL,
		ApplauseCount:  p.ApplauseCount,
		FoodBrought:    p.FoodBrought,
		PendingFood:    p.PendingFood,
		LastApplauseAt: p.LastApplauseAt,
	}
}

// listPeopleHandler godoc
// @Summary Listar personas
// @Description Devuelve todas las personas ordenadas por aplausos (desc) y nombre. Con `pending=true` solo las que deben traer comida.
// @Tags people
// @Produce json
// @Param pending query bool false "Solo personas con comida pendiente"
// @Success 200 {array} PersonResponse
// @Failure 400 {string} string "invalid pending"
// @Failure 500 {string} string "internal error"
// @Router /people [get]
func listPeopleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := ListFilter{}
		if v := r.URL.Query().Get("pending"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "invalid pending", http.StatusBadRequest)
				return
			}
			filter.PendingOnly = b
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]PersonResponse, 0, len(items))
		for _, p := range items {
			out = append(out, ToPersonResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPersonHandler godoc
// @Summary Obtener persona
// @Tags people
// @Produce json
// @Param personID path string true "ID de la persona"
// @Success 200 {object} PersonResponse
// @Failure 404 {string} string "person not found"
// @Failure 500 {string} string "internal error"
// @Router /people/{personID} [get]
func getPersonHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "personID"))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
				http.Error(w, "person not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, ToPersonResponse(p))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
