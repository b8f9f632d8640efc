package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/ShubhamSahu22/aws-copilot-pubsub/internal/domain/order"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/internal/interfaces/http/view"
	"github.com/ShubhamSahu22/aws-copilot-pubsub/pkg/logger"
)

type stubService struct {
	submitID    string
	submitErr   error
	lookupOrder *domain.Order
	lookupErr   error

	gotCustomer string
	gotAmount   string
	gotID       string
	lookups     int
}

func (s *stubService) Submit(ctx context.Context, customer, amount string) (string, error) {
	s.gotCustomer = customer
	s.gotAmount = amount
	return s.submitID, s.submitErr
}

func (s *stubService) Lookup(ctx context.Context, id string) (*domain.Order, error) {
	s.gotID = id
	s.lookups++
	return s.lookupOrder, s.lookupErr
}

// recordingRenderer captures what the handler asked to render and writes a
// minimal body so status codes are observable.
type recordingRenderer struct {
	form     *view.IntakeForm
	formCode int
	page     *view.OrderPage
}

func (r *recordingRenderer) IntakeForm(c *gin.Context, code int, form view.IntakeForm) {
	r.form = &form
	r.formCode = code
	c.String(code, "intake form")
}

func (r *recordingRenderer) OrderPage(c *gin.Context, page view.OrderPage) {
	r.page = &page
	c.String(http.StatusOK, "order page")
}

func newTestRouter(svc OrderService) (*gin.Engine, *recordingRenderer) {
	gin.SetMode(gin.TestMode)

	renderer := &recordingRenderer{}
	h := NewOrderHandler(svc, renderer, logger.NewNop())

	r := gin.New()
	r.GET("/", h.ShowIntakeForm)
	r.POST("/", h.SubmitOrder)
	r.GET("/request/:id", h.ShowOrder)
	return r, renderer
}

func postForm(r *gin.Engine, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestShowIntakeForm_Prepopulated(t *testing.T) {
	router, renderer := newTestRouter(&stubService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, renderer.form)
	assert.NotEmpty(t, renderer.form.Customer)
	assert.NotEmpty(t, renderer.form.Amount)
	assert.Empty(t, renderer.form.Error)
}

func TestSubmitOrder_RedirectsToLookup(t *testing.T) {
	svc := &stubService{submitID: "b7c1c2de-8a4f-4e26-9d0a-1f2e3d4c5b6a"}
	router, _ := newTestRouter(svc)

	w := postForm(router, url.Values{"customer": {"Jane Doe"}, "amount": {"42.50"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/request/"+svc.submitID, w.Header().Get("Location"))
	assert.Equal(t, "Jane Doe", svc.gotCustomer)
	assert.Equal(t, "42.50", svc.gotAmount)
}

func TestSubmitOrder_ValidationKeepsRawInput(t *testing.T) {
	svc := &stubService{submitErr: &domain.ValidationError{Reason: "Amount must be a positive number."}}
	router, renderer := newTestRouter(svc)

	w := postForm(router, url.Values{"customer": {"John Doe"}, "amount": {"-5.0"}})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, renderer.form)
	assert.Equal(t, "John Doe", renderer.form.Customer)
	assert.Equal(t, "-5.0", renderer.form.Amount)
	assert.Equal(t, "Amount must be a positive number.", renderer.form.Error)
}

func TestSubmitOrder_NotificationFailureStillRedirects(t *testing.T) {
	svc := &stubService{
		submitID:  "b7c1c2de-8a4f-4e26-9d0a-1f2e3d4c5b6a",
		submitErr: &domain.NotificationError{Err: errors.New("broker unreachable")},
	}
	router, _ := newTestRouter(svc)

	w := postForm(router, url.Values{"customer": {"Jane Doe"}, "amount": {"42.50"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/request/"+svc.submitID, w.Header().Get("Location"))
}

func TestSubmitOrder_PersistenceFailureGenericMessage(t *testing.T) {
	svc := &stubService{submitErr: &domain.PersistenceError{Err: errors.New("connection refused: 10.0.0.7")}}
	router, renderer := newTestRouter(svc)

	w := postForm(router, url.Values{"customer": {"Jane Doe"}, "amount": {"42.50"}})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, renderer.form)
	assert.Equal(t, "An error occurred. Please try again later.", renderer.form.Error)
	assert.Equal(t, "Jane Doe", renderer.form.Customer)
	assert.NotContains(t, renderer.form.Error, "connection refused", "internal detail must not leak")
}

func TestShowOrder_RendersOrder(t *testing.T) {
	o := &domain.Order{
		ID:       "b7c1c2de-8a4f-4e26-9d0a-1f2e3d4c5b6a",
		Customer: "Jane Doe",
		Amount:   decimal.RequireFromString("42.50"),
	}
	svc := &stubService{lookupOrder: o}
	router, renderer := newTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/request/"+o.ID, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, renderer.page)
	assert.Equal(t, o.ID, renderer.page.ID)
	assert.Equal(t, "Jane Doe", renderer.page.Customer)
	assert.Equal(t, "42.5", renderer.page.Amount)
	assert.Equal(t, o.ID, svc.gotID)
}

func TestShowOrder_NotFound(t *testing.T) {
	svc := &stubService{lookupErr: domain.ErrNotFound}
	router, _ := newTestRouter(svc)

	id := "00000000-0000-0000-0000-000000000000"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/request/"+id, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), id)
}

func TestShowOrder_MalformedID(t *testing.T) {
	svc := &stubService{lookupErr: &domain.ValidationError{Reason: "Order id must be a valid UUID."}}
	router, _ := newTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/request/not-a-valid-id", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not-a-valid-id")
}

func TestShowOrder_BackendFailure(t *testing.T) {
	svc := &stubService{lookupErr: &domain.PersistenceError{Err: errors.New("connection refused: 10.0.0.7")}}
	router, _ := newTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/request/b7c1c2de-8a4f-4e26-9d0a-1f2e3d4c5b6a", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to retrieve order")
	assert.NotContains(t, w.Body.String(), "connection refused")
}
