package personajes

import (
	"encoding/json"
	"errors"
	"net/http"

	"personajes-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes limita el cuerpo de POST y PUT.
const maxBodyBytes = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/personajes", func(pr chi.Router) {
		pr.Get("/", listPersonajesHandler(svc, log))
		// chi resuelve el segmento estático antes que {id}
		pr.Get("/ordenados", listSortedPersonajesHandler(svc, log))
		pr.Get("/{id}", getPersonajeHandler(svc, log))
		pr.Post("/", createPersonajeHandler(svc, log))
		pr.Put("/", updatePersonajeHandler(svc, log))
		pr.Delete("/{id}", deletePersonajeHandler(svc, log))
	})
}

// personajeRequest es el cuerpo de POST y PUT. El id llega como JSON crudo
// porque se acepta tanto 7 como "7".
type personajeRequest struct {
	ID     json.RawMessage `json:"id" swaggertype:"integer"`
	Nombre string          `json:"nombre"`
	Edad   *float64        `json:"edad"`
	Genero string          `json:"genero"`
	Raza   string          `json:"raza"`
	Clase  string          `json:"clase"`
}

type getResponse struct {
	Success bool                 `json:"success"`
	Mensaje string               `json:"mensaje"`
	Data    *PersonajeFormateado `json:"data"`
}

type mutationResponse struct {
	Message   string     `json:"message"`
	Personaje *Personaje `json:"personaje,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Detalle string `json:"detalle,omitempty"`
}

// listPersonajesHandler godoc
// @Summary Listar personajes
// @Description Devuelve la colección completa en el orden de almacenamiento, sin formatear.
// @Tags personajes
// @Produce json
// @Success 200 {array} Personaje
// @Failure 500 {object} errorResponse
// @Router /personajes [get]
func listPersonajesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, log, err, "Error al obtener personajes")
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// listSortedPersonajesHandler godoc
// @Summary Listar personajes ordenados por nombre
// @Description Orden alfabético sin distinguir mayúsculas ni acentos. No modifica el orden guardado.
// @Tags personajes
// @Produce json
// @Success 200 {array} Personaje
// @Failure 500 {object} errorResponse
// @Router /personajes/ordenados [get]
func listSortedPersonajesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListSorted(r.Context())
		if err != nil {
			writeError(w, log, err, "Error al ordenar personajes")
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// getPersonajeHandler godoc
// @Summary Obtener personaje por id
// @Tags personajes
// @Produce json
// @Param id path int true "ID del personaje"
// @Success 200 {object} getResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} ErrorBody
// @Failure 500 {object} errorResponse
// @Router /personajes/{id} [get]
func getPersonajeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			var nf *NotFoundError
			if errors.As(err, &nf) {
				writeJSON(w, http.StatusNotFound, NotFoundBody(nf.ID))
				return
			}
			writeError(w, log, err, "Error al buscar personaje")
			return
		}

		writeJSON(w, http.StatusOK, getResponse{
			Success: true,
			Mensaje: "Personaje encontrado",
			Data:    p,
		})
	}
}

// createPersonajeHandler godoc
// @Summary Crear personaje
// @Description El id lo asigna el cliente. Requiere nombre, edad, genero, raza y clase.
// @Tags personajes
// @Accept json
// @Produce json
// @Param payload body personajeRequest true "Personaje a crear"
// @Success 201 {object} mutationResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /personajes [post]
func createPersonajeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeInput(w, r)
		if !ok {
			return
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			writeError(w, log, err, "Error al crear personaje")
			return
		}
		writeJSON(w, http.StatusCreated, mutationResponse{Message: "Personaje creado con éxito", Personaje: &p})
	}
}

// updatePersonajeHandler godoc
// @Summary Reemplazar personaje
// @Description Reemplazo completo: los campos que no vienen en el cuerpo se pierden. El id va en el cuerpo.
// @Tags personajes
// @Accept json
// @Produce json
// @Param payload body personajeRequest true "Documento de reemplazo"
// @Success 200 {object} mutationResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /personajes [put]
func updatePersonajeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeInput(w, r)
		if !ok {
			return
		}

		p, err := svc.Update(r.Context(), in)
		if err != nil {
			writeError(w, log, err, "Error al actualizar personaje")
			return
		}
		writeJSON(w, http.StatusOK, mutationResponse{Message: "Personaje actualizado", Personaje: &p})
	}
}

// deletePersonajeHandler godoc
// @Summary Eliminar personaje
// @Tags personajes
// @Produce json
// @Param id path int true "ID del personaje"
// @Success 200 {object} mutationResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /personajes/{id} [delete]
func deletePersonajeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, log, err, "Error al eliminar personaje")
			return
		}
		writeJSON(w, http.StatusOK, mutationResponse{Message: "Personaje eliminado con éxito"})
	}
}

func decodeInput(w http.ResponseWriter, r *http.Request) (CreateInput, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req personajeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "cuerpo demasiado grande"})
			return CreateInput{}, false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "json inválido"})
		return CreateInput{}, false
	}

	return CreateInput{
		ID:     rawID(req.ID),
		Nombre: req.Nombre,
		Edad:   req.Edad,
		Genero: req.Genero,
		Raza:   req.Raza,
		Clase:  req.Clase,
	}, true
}

// rawID pasa el id del cuerpo a texto: "7" y 7 quedan iguales; null o
// ausente queda vacío y falla en ParseID.
func rawID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func writeError(w http.ResponseWriter, log logger.Logger, err error, fallback string) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Msg})
	case errors.Is(err, ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: MsgIDDuplicado})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: MsgNoEncontrado})
	default:
		log.Error(fallback, map[string]any{"err": err.Error()})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: fallback, Detalle: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
