package legacy

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"applause-ledger/internal/domain/applause"
	"applause-ledger/internal/domain/history"
	"applause-ledger/internal/domain/people"
)

// BasePath es el path de la edge function que tiene configurado el frontend.
const BasePath = "/make-server-daca5355"

type Services struct {
	People  *people.Service
	History *history.Service
	Ledger  *applause.Service
}

// RegisterRoutes monta la API completa bajo BasePath. Las escrituras
// también quedan en la raíz, donde ya las llamaban otros clientes.
func RegisterRoutes(r chi.Router, svc Services) {
	registerWrites(r, svc)

	r.Route(BasePath, func(r chi.Router) {
		r.Get("/people", listPeopleHandler(svc))
		r.Get("/people/{personID}", getPersonHandler(svc))
		r.Get("/people/{personID}/history", historyHandler(svc))
		r.Get("/people/{personID}/given-history", givenHistoryHandler(svc))
		registerWrites(r, svc)
	})
}

func registerWrites(r chi.Router, svc Services) {
	r.Post("/applause", grantHandler(svc))
	r.Post("/remove-applause", revokeHandler(svc))
	r.Post("/mark-food-brought/{personID}", markFoodBroughtHandler(svc))
}

type grantRequest struct {
	PersonID string `json:"personId"`
	GivenBy  string `json:"givenBy"`
}

type revokeRequest struct {
	PersonID  string `json:"personId"`
	RemovedBy string `json:"removedBy"`
}

// listPeopleHandler godoc
// @Summary Listar personas (formato frontend)
// @Tags legacy
// @Produce json
// @Success 200 {object} PeopleEnvelope
// @Failure 500 {object} ErrorResponse
// @Router /make-server-daca5355/people [get]
func listPeopleHandler(svc Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.People.List(r.Context(), people.ListFilter{})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to get people")
			return
		}
		writeJSON(w, http.StatusOK, PeopleEnvelope{People: fromPeople(items)})
	}
}

// getPersonHandler godoc
// @Summary Obtener persona (formato frontend)
// @Tags legacy
// @Produce json
// @Param personID path string true "ID de la persona"
// @Success 200 {object} PersonEnvelope
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /make-server-daca5355/people/{personID} [get]
func getPersonHandler(svc Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.People.GetByID(r.Context(), chi.URLParam(r, "personID"))
		if err != nil {
			if errors.Is(err, people.ErrNotFound) || errors.Is(err, people.ErrInvalidInput) {
				writeError(w, http.StatusNotFound, "Person not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to get person")
			return
		}
		writeJSON(w, http.StatusOK, PersonEnvelope{Person: FromPerson(p)})
	}
}

// historyHandler godoc
// @Summary Historial recibido (formato frontend)
// @Description Últimas 20 entradas donde la persona es el destinatario, más nuevas primero.
// @Tags legacy
// @Produce json
// @Param personID path string true "ID de la persona"
// @Success 200 {object} HistoryEnvelope
// @Failure 500 {object} ErrorResponse
// @Router /make-server-daca5355/people/{personID}/history [get]
func historyHandler(svc Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.History.Received(r.Context(), chi.URLParam(r, "personID"), 0)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to get history")
			return
		}
		writeJSON(w, http.StatusOK, HistoryEnvelope{History: fromEntries(items)})
	}
}

// givenHistoryHandler godoc
// @Summary Historial dado (formato frontend)
// @Description Últimas 20 entradas dadas o quitadas por la persona, más nuevas primero.
// @Tags legacy
// @Produce json
// @Param personID path string true "ID de la persona"
// @Success 200 {object} HistoryEnvelope
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /make-server-daca5355/people/{personID}/given-history [get]
func givenHistoryHandler(svc Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, found, err := svc.People.NameOf(r.Context(), chi.URLParam(r, "personID"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to get history")
			return
		}
		if !found {
			writeError(w, http.StatusNotFound, "Person not found")
			return
		}
		items, err := svc.History.Given(r.Context(), name, 0)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to get history")
			return
		}
		writeJSON(w, http.StatusOK, HistoryEnvelope{History: fromEntries(items)})
	}
}

// grantHandler godoc
// @Summary Dar aplauso (formato frontend)
// @Description Al llegar a 15 el contador vuelve a 0, suma una comida pendiente y devuelve celebration=true.
// @Tags legacy
// @Accept json
// @Produce json
// @Param body body grantRequest true "personId + givenBy"
// @Success 200 {object} ApplauseEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /applause [post]
func grantHandler(svc Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req grantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if strings.TrimSpace(req.PersonID) == "" || strings.TrimSpace(req.GivenBy) == "" {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		res, err := svc.Ledger.Grant(r.Context(), req.PersonID, req.GivenBy)
		if err != nil {
			writeLedgerError(w, err, "Failed to give applause")
			return
		}
		writeJSON(w, http.StatusOK, ApplauseEnvelope{Person: FromPerson(res.Person), Celebration: res.Celebration})
	}
}

// revokeHandler godoc
// @Summary Quitar aplauso (formato frontend)
// @Description Con el contador en 0 no hace nada y devuelve la persona sin cambios.
// @Tags legacy
// @Accept json
// @Produce json
// @Param body body revokeRequest true "personId + removedBy"
// @Success 200 {object} PersonEnvelope
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /remove-applause [post]
func revokeHandler(svc Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req revokeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if strings.TrimSpace(req.PersonID) == "" || strings.TrimSpace(req.RemovedBy) == "" {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		res, err := svc.Ledger.Revoke(r.Context(), req.PersonID, req.RemovedBy)
		if err != nil {
			writeLedgerError(w, err, "Failed to remove applause")
			return
		}
		writeJSON(w, http.StatusOK, PersonEnvelope{Person: FromPerson(res.Person)})
	}
}

// markFoodBroughtHandler godoc
// @Summary Confirmar comida traída (formato frontend)
// @Tags legacy
// @Produce json
// @Param personID path string true "ID de la persona"
// @Success 200 {object} PersonEnvelope
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /mark-food-brought/{personID} [post]
func markFoodBroughtHandler(svc Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Ledger.AcknowledgeTreat(r.Context(), chi.URLParam(r, "personID"))
		if err != nil {
			writeLedgerError(w, err, "Failed to mark food as brought")
			return
		}
		writeJSON(w, http.StatusOK, PersonEnvelope{Person: FromPerson(p)})
	}
}

func writeLedgerError(w http.ResponseWriter, err error, internalMsg string) {
	switch {
	case errors.Is(err, applause.ErrNotFound), errors.Is(err, applause.ErrInvalidInput):
		writeError(w, http.StatusNotFound, "Person not found")
	default:
		writeError(w, http.StatusInternalServerError, internalMsg)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
