package cats

import (
	"encoding/json"
	"errors"
	"fmt"
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

	// Páginas
	r.Get("/", hostIndexHandler(svc, views, log))
	r.Get("/page1", hostPage1Handler(svc, views, log))
	r.Get("/page2", hostPage2Handler(views, log))

	// API
	r.Get("/getName", getNameHandler(svc))
	r.Post("/setName", setNameHandler(svc, log))
	r.Get("/search", searchNameHandler(svc, log))
	r.Get("/readCat", readCatHandler(svc, log))
	r.Post("/updateLast", updateLastHandler(svc, log))
	r.Get("/api/cats", listCatsHandler(svc, log))
}

// catSummary es la forma corta que devuelven setName / search / updateLast.
type catSummary struct {
	Name string `json:"name"`
	Beds int    `json:"beds"`
}

type nameResponse struct {
	Name string `json:"name"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// setNameRequest documenta el cuerpo de /setName (form o JSON).
type setNameRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Beds      int    `json:"beds"`
}

func hostIndexHandler(svc *Service, views *pages.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, views, log, http.StatusOK, pages.Index, pages.Data{
			Title:    "Home",
			PageName: "Home Page",
			View:     pages.IndexView{CurrentName: svc.Last().Name},
		})
	}
}

func hostPage1Handler(svc *Service, views *pages.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.FindAll(r.Context())
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		render(w, views, log, http.StatusOK, pages.Page1, pages.Data{
			Title:    "Cats",
			PageName: "All Cats",
			View:     struct{ Cats []Cat }{Cats: items},
		})
	}
}

func hostPage2Handler(views *pages.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, views, log, http.StatusOK, pages.Page2, pages.Data{
			Title:    "Add a Cat",
			PageName: "Add a Cat",
		})
	}
}

// getNameHandler godoc
// @Summary Nombre del último gato
// @Tags cats
// @Produce json
// @Success 200 {object} nameResponse
// @Router /getName [get]
func getNameHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, nameResponse{Name: svc.Last().Name})
	}
}

// setNameHandler godoc
// @Summary Crear gato
// @Description Crea un gato con nombre `firstname lastname` y `beds` camas. Pasa a ser el último gato.
// @Tags cats
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body setNameRequest true "Datos del gato"
// @Success 200 {object} catSummary
// @Failure 400 {object} errorResponse "campos faltantes o inválidos"
// @Failure 500 {object} errorResponse "internal error"
// @Router /setName [post]
func setNameHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := form.Decode(w, r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if !in.Present("firstname") || !in.Present("lastname") || !in.Present("beds") {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "firstname,lastname and beds are all required"})
			return
		}

		name := fmt.Sprintf("%s %s", in.String("firstname"), in.String("lastname"))

		c, err := svc.Create(r.Context(), records.Fields{
			"name":         name,
			FieldBedsOwned: in["beds"],
		})
		if err != nil {
			writeServiceError(w, log, err)
			return
		}

		log.Info("cat created", map[string]any{"id": c.ID, "name": c.Name})
		writeJSON(w, http.StatusOK, toSummary(c))
	}
}

// searchNameHandler godoc
// @Summary Buscar gato por nombre
// @Tags cats
// @Produce json
// @Param name query string true "Nombre exacto"
// @Success 200 {object} catSummary
// @Failure 400 {object} errorResponse "Name is required to perform a search"
// @Failure 404 {object} errorResponse "No cats found"
// @Router /search [get]
func searchNameHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Name is required to perform a search"})
			return
		}

		c, err := svc.GetByName(r.Context(), name)
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toSummary(c))
	}
}

// readCatHandler devuelve el documento completo.
func readCatHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Name is required to perform a search"})
			return
		}

		c, err := svc.GetByName(r.Context(), name)
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// updateLastHandler godoc
// @Summary Sumar una cama al último gato
// @Description Incrementa bedsOwned del último gato creado/actualizado y lo persiste. No relee del store.
// @Tags cats
// @Produce json
// @Success 200 {object} catSummary
// @Failure 500 {object} errorResponse "internal error"
// @Router /updateLast [post]
func updateLastHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.UpdateLast(r.Context(), FieldBedsOwned)
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toSummary(c))
	}
}

func listCatsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.FindAll(r.Context())
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func toSummary(c Cat) catSummary {
	return catSummary{Name: c.Name, Beds: c.BedsOwned}
}

// writeServiceError mapea la taxonomía de records a status codes.
// El detalle de StoreError se loguea, no se devuelve.
func writeServiceError(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, records.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "No cats found"})
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

// writeJSON está duplicado intencionalmente en cats/dogs, igual que en el resto de módulos.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
