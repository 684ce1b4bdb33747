package dogs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pet-records/internal/domain/records"
	"pet-records/internal/pages"
	"pet-records/internal/platform/form"
	"pet-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, views *pages.Renderer, log logger.Logger) {
	log = log.With(map[string]any{"kind": string(Kind)})

	r.Get("/page3", hostPage3Handler(views, log))
	r.Get("/page4", hostPage4Handler(svc, views, log))

	r.Get("/getDogName", getDogNameHandler(svc))
	r.Post("/setDog", setDogHandler(svc, log))
	r.Get("/searchDog", searchDogHandler(svc, log))
	r.Get("/readDog", readDogHandler(svc, log))
	r.Post("/updateLastDog", updateLastDogHandler(svc, log))
	r.Get("/api/dogs", listDogsHandler(svc, log))
}

type dogSummary struct {
	Name  string `json:"name"`
	Breed string `json:"breed"`
	Age   int    `json:"age"`
}

type nameResponse struct {
	Name string `json:"name"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type setDogRequest struct {
	Name  string `json:"name"`
	Breed string `json:"breed"`
	Age   int    `json:"age"`
}

func hostPage3Handler(views *pages.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, views, log, http.StatusOK, pages.Page3, pages.Data{
			Title:    "Add a Dog",
			PageName: "Add a Dog",
		})
	}
}

func hostPage4Handler(svc *Service, views *pages.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.FindAll(r.Context())
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		render(w, views, log, http.StatusOK, pages.Page4, pages.Data{
			Title:    "Dogs",
			PageName: "All Dogs",
			View:     struct{ Dogs []Dog }{Dogs: items},
		})
	}
}

func getDogNameHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, nameResponse{Name: svc.Last().Name})
	}
}

// setDogHandler godoc
// @Summary Crear perro
// @Tags dogs
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body setDogRequest true "Datos del perro"
// @Success 200 {object} dogSummary
// @Failure 400 {object} errorResponse "campos faltantes o inválidos"
// @Failure 500 {object} errorResponse "internal error"
// @Router /setDog [post]
func setDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := form.Decode(w, r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if !in.Present("name") || !in.Present("breed") || !in.Present("age") {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name, breed, and age are all required"})
			return
		}

		d, err := svc.Create(r.Context(), records.Fields{
			"name":   in["name"],
			"breed":  in["breed"],
			FieldAge: in["age"],
		})
		if err != nil {
			writeServiceError(w, log, err)
			return
		}

		log.Info("dog created", map[string]any{"id": d.ID, "name": d.Name})
		writeJSON(w, http.StatusOK, toSummary(d))
	}
}

// searchDogHandler godoc
// @Summary Buscar perro y sumarle un año
// @Description Busca por nombre, incrementa age, lo persiste y devuelve el valor ya incrementado.
// @Tags dogs
// @Produce json
// @Param name query string true "Nombre exacto"
// @Success 200 {object} dogSummary
// @Failure 400 {object} errorResponse "Name is required to perform a search"
// @Failure 404 {object} errorResponse "No dogs found"
// @Failure 500 {object} errorResponse "internal error"
// @Router /searchDog [get]
func searchDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Name is required to perform a search"})
			return
		}

		d, err := svc.IncrementAndSave(r.Context(), name, FieldAge)
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toSummary(d))
	}
}

func readDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Name is required to perform a search"})
			return
		}

		d, err := svc.GetByName(r.Context(), name)
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

// updateLastDogHandler godoc
// @Summary Sumar un año al último perro
// @Tags dogs
// @Produce json
// @Success 200 {object} dogSummary
// @Failure 500 {object} errorResponse "internal error"
// @Router /updateLastDog [post]
func updateLastDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.UpdateLast(r.Context(), FieldAge)
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toSummary(d))
	}
}

func listDogsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.FindAll(r.Context())
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func toSummary(d Dog) dogSummary {
	return dogSummary{Name: d.Name, Breed: d.Breed, Age: d.Age}
}

func writeServiceError(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, records.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "No dogs found"})
	case records.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		log.Error("store failure", map[string]any{"err": err.Error()})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func render(w http.ResponseWriter, views *pages.Renderer, log logger.Logger, status int, name string, data pages.Data) {
	if err := views.Render(w, status, name, data); err != nil {
		log.Error("render failed", map[string]any{"view": name, "err": err.Error()})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
