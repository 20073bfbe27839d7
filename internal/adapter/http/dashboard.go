package http

import (
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/couchcryptid/store-seasonality-dashboard/internal/domain"
)

const sessionCookie = "session_id"

// handlePage renders the form and, when the session has a selection, its charts.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	data := pageData{}
	if sel, ok := s.currentSelection(r); ok {
		data.StoreInput, data.GrainInput = formValues(sel)
		s.renderCharts(&data, sel)
	}
	s.writePage(w, http.StatusOK, data)
}

// handleSubmit applies a form submission to the session's selection.
// Blank fields are answered with 204 and change nothing. A non-integer store
// is reported next to the form; a valid submission replaces the selection.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	storeInput := r.PostFormValue("store")
	grainInput := r.PostFormValue("grain")

	sel, ok, err := domain.ParseSelection(storeInput, grainInput)
	switch {
	case err != nil:
		s.metrics.Submissions.WithLabelValues("invalid").Inc()
		s.logger.Info("invalid store input", "store_input", storeInput, "error", err)

		data := pageData{StoreInput: storeInput, GrainInput: grainInput, FormError: err.Error()}
		if prior, ok := s.currentSelection(r); ok {
			s.renderCharts(&data, prior)
		}
		s.writePage(w, http.StatusUnprocessableEntity, data)
		return

	case !ok:
		// The browser stays on the current page and nothing is redrawn.
		s.metrics.Submissions.WithLabelValues("ignored").Inc()
		s.logger.Debug("incomplete submission ignored")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	id := s.sessionID(w, r)
	s.sessions.Put(id, sel)
	s.metrics.Submissions.WithLabelValues("valid").Inc()
	s.observeSessions()
	s.logger.Info("selection updated", "session_id", id, "store", sel.Store, "grain", sel.Grain)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) currentSelection(r *http.Request) (domain.Selection, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return domain.Selection{}, false
	}
	sel, ok := s.sessions.Get(c.Value)
	s.observeSessions()
	return sel, ok
}

// sessionID returns the request's session id. Ids the store does not hold,
// expired or never issued, are replaced by a fresh id and cookie.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" && s.sessions.Has(c.Value) {
		return c.Value
	}
	id := s.sessions.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// observeSessions publishes the session count; lookups drop expired entries.
func (s *Server) observeSessions() {
	s.metrics.SessionsActive.Set(float64(s.sessions.Len()))
}

// renderCharts fills the chart panes of data. Every render failure becomes a
// message on the page.
func (s *Server) renderCharts(data *pageData, sel domain.Selection) {
	selCopy := sel
	data.Selection = &selCopy

	start := time.Now()
	pair, err := s.renderer.Render(sel)
	s.metrics.RenderDuration.Observe(time.Since(start).Seconds())

	var unknown *domain.UnknownStoreError
	switch {
	case errors.As(err, &unknown):
		s.metrics.Renders.WithLabelValues("not_found").Inc()
		data.NotFound = true
		return
	case err != nil:
		s.metrics.Renders.WithLabelValues("error").Inc()
		s.logger.Error("render charts failed", "store", sel.Store, "error", err)
		data.RenderError = "The charts could not be drawn."
		if s.debug {
			data.RenderError += " " + err.Error()
		}
		return
	case pair.NoSeasonalityData:
		s.metrics.Renders.WithLabelValues("no_data").Inc()
	default:
		s.metrics.Renders.WithLabelValues("ok").Inc()
	}

	data.State = pair.State
	data.StoreCount = pair.StoreCount
	data.NoData = pair.NoSeasonalityData
	// Both SVGs are produced by the chart renderer from reference data.
	data.SeasonalitySVG = template.HTML(pair.Seasonality) //nolint:gosec // trusted renderer output
	data.MapSVG = template.HTML(pair.Map)                 //nolint:gosec // trusted renderer output
}
