package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/couchcryptid/store-seasonality-dashboard/internal/domain"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

const pageTitle = "Time Series Visualizer"

// pageData is everything the dashboard template reads.
type pageData struct {
	StoreInput string
	GrainInput string
	FormError  string

	Selection      *domain.Selection
	State          string
	StoreCount     int
	SeasonalitySVG template.HTML
	MapSVG         template.HTML
	NoData         bool
	NotFound       bool
	RenderError    string
}

func (pageData) Title() string { return pageTitle }

func formValues(sel domain.Selection) (store, grain string) {
	return strconv.Itoa(sel.Store), sel.Grain
}

func (s *Server) writePage(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.logger.Error("execute page template", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes()) //nolint:errcheck // client went away
}
