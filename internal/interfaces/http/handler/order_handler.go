package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/ShubhamSahu22/aws-copilot-pubsub/internal/domain/order"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/interfaces/http/view"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/pkg/logger"
)

// OrderService is the intake/lookup contract the handlers depend on.
type OrderService interface {
	Submit(ctx context.Context, customer, amount string) (string, error)
	Lookup(ctx context.Context, id string) (*domain.Order, error)
}

// Renderer produces the HTML responses. Handlers treat rendering as an
// external collaborator so tests can substitute a recorder.
type Renderer interface {
	IntakeForm(c *gin.Context, code int, form view.IntakeForm)
	OrderPage(c *gin.Context, page view.OrderPage)
}

type OrderHandler struct {
	svc      OrderService
	renderer Renderer
	log      logger.Logger
}

func NewOrderHandler(svc OrderService, renderer Renderer, log logger.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, renderer: renderer, log: log}
}

// ShowIntakeForm serves the submission form with sample values prefilled.
func (h *OrderHandler) ShowIntakeForm(c *gin.Context) {
	h.renderer.IntakeForm(c, http.StatusOK, view.SampleIntakeForm())
}

// SubmitOrder handles the form post. The raw form values are captured before
// anything can fail so every failure path re-displays exactly what was
// submitted.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	customer := c.PostForm("customer")
	amount := c.PostForm("amount")

	id, err := h.svc.Submit(c.Request.Context(), customer, amount)

	var vErr *domain.ValidationError
	var nErr *domain.NotificationError
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/request/"+id)
	case errors.As(err, &vErr):
		h.renderer.IntakeForm(c, http.StatusOK, view.IntakeForm{
			Customer: customer,
			Amount:   amount,
			Error:    vErr.Reason,
		})
	case errors.As(err, &nErr):
		// The order is durably stored; send the caller to it and leave the
		// publish failure to operational follow-up.
		h.log.Error("order stored but notification failed",
			logger.String("order_id", id),
			logger.Error(err),
		)
		c.Redirect(http.StatusSeeOther, "/request/"+id)
	default:
		h.log.Error("order submission failed", logger.Error(err))
		h.renderer.IntakeForm(c, http.StatusOK, view.IntakeForm{
			Customer: customer,
			Amount:   amount,
			Error:    "An error occurred. Please try again later.",
		})
	}
}

// ShowOrder renders a stored order by id. A malformed id gets the same 404 as
// a miss; no order can exist under it.
func (h *OrderHandler) ShowOrder(c *gin.Context) {
	id := c.Param("id")

	o, err := h.svc.Lookup(c.Request.Context(), id)

	var vErr *domain.ValidationError
	switch {
	case err == nil:
		h.renderer.OrderPage(c, view.PageFromOrder(o))
	case errors.Is(err, domain.ErrNotFound), errors.As(err, &vErr):
		c.String(http.StatusNotFound, "Order with ID %s not found.", id)
	default:
		h.log.Error("order lookup failed",
			logger.String("order_id", id),
			logger.Error(err),
		)
		c.String(http.StatusInternalServerError, "Failed to retrieve order. Please try again later.")
	}
}
