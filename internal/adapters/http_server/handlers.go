package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/justplus-adrian/Priority-Interview-main/internal/app"
	"github.com/justplus-adrian/Priority-Interview-main/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	C *app.CommandService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/customer", func(r chi.Router) {
		r.Get("/", h.listCustomers)
		r.Post("/", h.addCustomer)
		r.Post("/register", h.registerCustomer)
		r.Get("/welcome", h.welcome)
		r.Get("/loyal", h.loyalCustomers)
		r.Get("/{id}", h.getCustomer)
		r.Put("/{id}", h.updateCustomer)
		r.Delete("/{id}", h.deleteCustomer)
	})

	s.mux.Route("/hotel", func(r chi.Router) {
		r.Get("/", h.listHotels)
		r.Post("/", h.addHotel)
		r.Get("/{id}", h.getHotel)
		r.Put("/{id}", h.updateHotel)
		r.Delete("/{id}", h.deleteHotel)
	})

	s.mux.Route("/visitation", func(r chi.Router) {
		r.Get("/", h.listVisitations)
		r.Post("/", h.addVisitation)
		r.Get("/daterange", h.visitationsByDateRange)
		r.Get("/customer/{id}", h.visitationsByCustomer)
		r.Get("/hotel/{id}", h.visitationsByHotel)
		r.Get("/{id}", h.getVisitation)
		r.Put("/{id}", h.updateVisitation)
		r.Delete("/{id}", h.deleteVisitation)
	})
}

// ---- shared helpers ----

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeError translates the app-layer taxonomy: validation -> 400,
// not found -> 404, anything else -> 500 with the detail kept off the wire.
func writeError(w http.ResponseWriter, err error) {
	var ve *app.ValidationError
	switch {
	case errors.As(err, &ve):
		writeProblem(w, http.StatusBadRequest, "Bad Request", ve.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		log.Error().Err(err).Msg("unhandled request error")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func idParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

func decodeBody(r *http.Request, dst any) bool {
	return json.NewDecoder(r.Body).Decode(dst) == nil
}

// parseDate accepts RFC 3339 or a bare date; the dashboard sends the latter.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeWithETag short-circuits to 304 when the client already holds the
// current version of a heavy list response.
func writeWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- customers ----

func (h *Handlers) welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Welcome to Priority Customer Management API!",
		"version":    "1.0.0",
		"dataSource": "In-memory data loaded from JSON seed files",
		"endpoints": []string{
			"GET /customer/welcome - This endpoint",
			"POST /customer - Add new customer",
			"GET /customer/{id} - Get a customer by ID",
			"GET /customer/loyal - Find loyal customers at date",
			"POST /customer/register - Register a customer at date",
		},
	})
}

func (h *Handlers) listCustomers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Q.Customers(r.Context()))
}

func (h *Handlers) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}
	c, ok := h.Q.Customer(r.Context(), id)
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "customer not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handlers) addCustomer(w http.ResponseWriter, r *http.Request) {
	var draft domain.Customer
	if !decodeBody(r, &draft) {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	c, err := h.C.AddCustomer(r.Context(), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handlers) registerCustomer(w http.ResponseWriter, r *http.Request) {
	var draft domain.Customer
	if !decodeBody(r, &draft) {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	c, err := h.C.RegisterCustomer(r.Context(), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handlers) loyalCustomers(w http.ResponseWriter, r *http.Request) {
	var asOf time.Time
	if ds := r.URL.Query().Get("date"); ds != "" {
		t, err := parseDate(ds)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Bad Request", "date must be RFC 3339 or YYYY-MM-DD")
			return
		}
		asOf = t
	}
	writeJSON(w, http.StatusOK, h.Q.LoyalCustomers(r.Context(), asOf))
}

func (h *Handlers) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}
	var c domain.Customer
	if !decodeBody(r, &c) {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	c.ID = id
	updated, err := h.C.UpdateCustomer(r.Context(), c)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}
	if err := h.C.DeleteCustomer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- hotels ----

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	writeWithETag(w, r, h.Q.Hotels(r.Context()))
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}
	hotel, ok := h.Q.Hotel(r.Context(), id)
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

func (h *Handlers) addHotel(w http.ResponseWriter, r *http.Request) {
	var draft domain.Hotel
	if !decodeBody(r, &draft) {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	hotel, err := h.C.AddHotel(r.Context(), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, hotel)
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}
	var hotel domain.Hotel
	if !decodeBody(r, &hotel) {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	hotel.ID = id
	updated, err := h.C.UpdateHotel(r.Context(), hotel)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}
	if err := h.C.DeleteHotel(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- visitations ----

func (h *Handlers) listVisitations(w http.ResponseWriter, r *http.Request) {
	writeWithETag(w, r, h.Q.VisitationDetails(r.Context()))
}

func (h *Handlers) getVisitation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}
	d, ok := h.Q.VisitationDetail(r.Context(), id)
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "visitation not found")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handlers) addVisitation(w http.ResponseWriter, r *http.Request) {
	var draft domain.Visitation
	if !decodeBody(r, &draft) {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	d, err := h.C.AddVisitation(r.Context(), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (h *Handlers) updateVisitation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}
	var v domain.Visitation
	if !decodeBody(r, &v) {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	v.ID = id
	updated, err := h.C.UpdateVisitation(r.Context(), v)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) deleteVisitation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}
	if err := h.C.DeleteVisitation(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) visitationsByCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}
	out, err := h.Q.VisitationsByCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) visitationsByHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}
	out, err := h.Q.VisitationsByHotel(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) visitationsByDateRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("startDate")
	endStr := r.URL.Query().Get("endDate")
	if startStr == "" || endStr == "" {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "startDate and endDate are required")
		return
	}
	start, err := parseDate(startStr)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "startDate must be RFC 3339 or YYYY-MM-DD")
		return
	}
	end, err := parseDate(endStr)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "endDate must be RFC 3339 or YYYY-MM-DD")
		return
	}
	out, err := h.Q.VisitationsByDateRange(r.Context(), start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
