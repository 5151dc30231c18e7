package applause

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"applause-ledger/internal/domain/people"
	"applause-ledger/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/people/{personID}/applause", grantHandler(svc))
	r.Post("/people/{personID}/applause/revoke", revokeHandler(svc))
	r.Post("/people/{personID}/treat/ack", ackTreatHandler(svc))
}

type actorRequest struct {
	// Si viene vacío se usa el header X-Actor-Name.
	Actor string `json:"actor"`
}

type ApplauseResponse struct {
	Person      people.PersonResponse `json:"person"`
	Celebration bool                  `json:"celebration"`
}

type PersonEnvelope struct {
	Person people.PersonResponse `json:"person"`
}

// grantHandler godoc
// @Summary Dar aplauso
// @Description Suma 1 aplauso. Al llegar a 15 el contador vuelve a 0, suma una comida pendiente y devuelve celebration=true.
// @Tags applause
// @Accept json
// @Produce json
// @Param personID path string true "ID de la persona"
// @Param X-Actor-Name header string false "Quién aplaude (si no viene en el body)"
// @Param body body actorRequest false "Actor"
// @Success 200 {object} ApplauseResponse
// @Failure 400 {string} string "actor required"
// @Failure 404 {string} string "person not found"
// @Failure 500 {string} string "internal error"
// @Router /people/{personID}/applause [post]
func grantHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req actorRequest
		if err := decodeOptional(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		res, err := svc.Grant(r.Context(), chi.URLParam(r, "personID"), actorFrom(r, req.Actor))
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ApplauseResponse{
			Person:      people.ToPersonResponse(res.Person),
			Celebration: res.Celebration,
		})
	}
}

// revokeHandler godoc
// @Summary Quitar aplauso
// @Description Resta 1 aplauso. Con el contador en 0 no hace nada y devuelve la persona sin cambios.
// @Tags applause
// @Accept json
// @Produce json
// @Param personID path string true "ID de la persona"
// @Param X-Actor-Name header string false "Quién quita el aplauso (si no viene en el body)"
// @Param body body actorRequest false "Actor"
// @Success 200 {object} PersonEnvelope
// @Failure 400 {string} string "actor required"
// @Failure 404 {string} string "person not found"
// @Failure 500 {string} string "internal error"
// @Router /people/{personID}/applause/revoke [post]
func revokeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req actorRequest
		if err := decodeOptional(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		res, err := svc.Revoke(r.Context(), chi.URLParam(r, "personID"), actorFrom(r, req.Actor))
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, PersonEnvelope{Person: people.ToPersonResponse(res.Person)})
	}
}

// ackTreatHandler godoc
// @Summary Confirmar comida traída
// @Description Pone pending_food=false. Idempotente.
// @Tags applause
// @Produce json
// @Param personID path string true "ID de la persona"
// @Success 200 {object} PersonEnvelope
// @Failure 404 {string} string "person not found"
// @Failure 500 {string} string "internal error"
// @Router /people/{personID}/treat/ack [post]
func ackTreatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.AcknowledgeTreat(r.Context(), chi.URLParam(r, "personID"))
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, PersonEnvelope{Person: people.ToPersonResponse(p)})
	}
}

// decodeOptional acepta body vacío.
func decodeOptional(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func actorFrom(r *http.Request, fromBody string) string {
	if s := strings.TrimSpace(fromBody); s != "" {
		return s
	}
	actor, _ := middleware.GetActor(r.Context())
	return actor
}

func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "actor required", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "person not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
