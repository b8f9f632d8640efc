package view

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/domain/order"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates for the gin engine.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// IntakeForm carries the values shown in the submission form. Customer and
// Amount stay raw text so a failed submission re-displays exactly what the
// caller typed.
type IntakeForm struct {
	Customer string
	Amount   string
	Error    string
}

// OrderPage carries one stored order for display.
type OrderPage struct {
	ID        string
	Customer  string
	Amount    string
	CreatedAt string
}

func PageFromOrder(o *order.Order) OrderPage {
	return OrderPage{
		ID:        o.ID,
		Customer:  o.Customer,
		Amount:    o.Amount.String(),
		CreatedAt: o.CreatedAt.Format(time.RFC1123),
	}
}

// HTMLRenderer renders pages through gin with the embedded templates.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

func (*HTMLRenderer) IntakeForm(c *gin.Context, code int, form IntakeForm) {
	c.HTML(code, "index.html", form)
}

func (*HTMLRenderer) OrderPage(c *gin.Context, page OrderPage) {
	c.HTML(http.StatusOK, "order.html", page)
}
