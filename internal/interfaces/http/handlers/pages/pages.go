// Package pages serves the HTML shells of the web UI. Each page is static markup plus
// app.js, which talks to /api with the token kept in localStorage.
package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chamados/servicedesk/internal/shared/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// Page names double as template file names.
const (
	PageLogin        = "login"
	PageHome         = "index"
	PageTickets      = "tickets"
	PageMyTickets    = "my-tickets"
	PageNewTicket    = "new-ticket"
	PageTicketDetail = "ticket-detail"
	PageUsers        = "users"
	PageClients      = "clients"
	PageCategories   = "categories"
	PageGroups       = "groups"
	PageLoginEvents  = "login-events"
	PageLockouts     = "lockouts"
)

var titles = map[string]string{
	PageLogin:        "Entrar",
	PageHome:         "Início",
	PageTickets:      "Chamados",
	PageMyTickets:    "Meus chamados",
	PageNewTicket:    "Novo chamado",
	PageTicketDetail: "Chamado",
	PageUsers:        "Usuários",
	PageClients:      "Clientes",
	PageCategories:   "Categorias",
	PageGroups:       "Grupos",
	PageLoginEvents:  "Logs de login",
	PageLockouts:     "Bloqueios de login",
}

type pageData struct {
	Page     string
	Title    string
	TicketID string
}

type PageHandler struct {
	pages  map[string]*template.Template
	logger logger.Interface
}

// NewPageHandler parses every page against the shared layout once.
func NewPageHandler(log logger.Interface) (*PageHandler, error) {
	layout, err := template.ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(titles))
	for name := range titles {
		clone, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout: %w", err)
		}
		tmpl, err := clone.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &PageHandler{pages: pages, logger: log}, nil
}

// Render serves a page that needs no path parameters.
func (h *PageHandler) Render(page string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, pageData{Page: page, Title: titles[page]})
	}
}

// TicketDetail handles GET /tickets/:id. The ticket itself is fetched by the browser.
func (h *PageHandler) TicketDetail(c *gin.Context) {
	h.render(c, pageData{Page: PageTicketDetail, Title: titles[PageTicketDetail], TicketID: c.Param("id")})
}

// Assets returns the static files referenced by the pages.
func Assets() http.FileSystem {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func (h *PageHandler) render(c *gin.Context, data pageData) {
	tmpl, ok := h.pages[data.Page]
	if !ok {
		c.String(http.StatusNotFound, "page not found")
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Errorw("failed to render page", "page", data.Page, "error", err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
