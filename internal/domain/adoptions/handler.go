package adoptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// RegisterRoutes monta las rutas de adopciones.
// adoptLimit (opcional) se aplica solo al POST, que es el único que escribe.
func RegisterRoutes(r chi.Router, svc *Service, adoptLimit func(http.Handler) http.Handler) {
	r.Route("/adoptions", func(ar chi.Router) {
		ar.Get("/", listAdoptionsHandler(svc))
		ar.Get("/{adoptionID}", getAdoptionHandler(svc))
		ar.Delete("/{adoptionID}", deleteAdoptionHandler(svc))

		if adoptLimit != nil {
			ar.With(adoptLimit).Post("/{userID}/{petID}", adoptHandler(svc))
		} else {
			ar.Post("/{userID}/{petID}", adoptHandler(svc))
		}
	})
}

// apiResponse es el sobre {status, ...} del contrato HTTP.
type apiResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

type adoptionResponse struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Pet       string    `json:"pet"`
	CreatedAt time.Time `json:"created_at"`
}

func adoptHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		petID := chi.URLParam(r, "petID")

		// Ids malformados se cortan en el borde como "not found" del
		// tipo correspondiente; nunca llegan al workflow.
		if !validID(userID) {
			writeError(w, http.StatusNotFound, "user Not found")
			return
		}
		if !validID(petID) {
			writeError(w, http.StatusNotFound, "Pet not found")
			return
		}

		a, err := svc.Adopt(r.Context(), userID, petID)
		if err != nil {
			switch {
			case errors.Is(err, ErrUserNotFound):
				writeError(w, http.StatusNotFound, "user Not found")
			case errors.Is(err, ErrPetNotFound):
				writeError(w, http.StatusNotFound, "Pet not found")
			case errors.Is(err, ErrAlreadyAdopted):
				writeError(w, http.StatusBadRequest, "Pet is already adopted")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, apiResponse{
			Status:  "success",
			Message: "Pet adopted",
			Payload: toAdoptionResponse(a),
		})
	}
}

func listAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]adoptionResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAdoptionResponse(a))
		}

		writeJSON(w, http.StatusOK, apiResponse{Status: "success", Payload: out})
	}
}

func getAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adoptionID := chi.URLParam(r, "adoptionID")
		if !validID(adoptionID) {
			writeError(w, http.StatusNotFound, "Adoption not found")
			return
		}

		a, err := svc.GetByID(r.Context(), adoptionID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Adoption not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, apiResponse{Status: "success", Payload: toAdoptionResponse(a)})
	}
}

func deleteAdoptionHandler(svc *Service) http.HandlerFunc {
	// Contrato de limpieza: borra solo el registro, sin cascada.
	return func(w http.ResponseWriter, r *http.Request) {
		adoptionID := chi.URLParam(r, "adoptionID")
		if !validID(adoptionID) {
			writeError(w, http.StatusNotFound, "Adoption not found")
			return
		}

		if err := svc.Delete(r.Context(), adoptionID); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Adoption not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, apiResponse{Status: "success", Message: "Adoption deleted"})
	}
}

func toAdoptionResponse(a Adoption) adoptionResponse {
	return adoptionResponse{
		ID:        a.ID,
		Owner:     a.OwnerID,
		Pet:       a.PetID,
		CreatedAt: a.CreatedAt,
	}
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apiResponse{Status: "error", Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
