package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// PaymentHandler handles checkout: payment intents and payment records.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type createIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type recordPaymentRequest struct {
	Email         string    `json:"email"          validate:"required,email"`
	Price         float64   `json:"price"          validate:"required,gt=0"`
	TransactionID string    `json:"transaction_id"`
	Date          time.Time `json:"date"`
	CartItemIDs   []string  `json:"cart_item_ids"  validate:"required,min=1"`
	MenuItemIDs   []string  `json:"menu_item_ids"  validate:"required,min=1"`
	Status        string    `json:"status"`
}

type recordPaymentResponse struct {
	Message string `json:"message"`
	Payment any    `json:"payment,omitempty"`
}

// CreateIntent handles POST /create-payment-intent — returns the gateway
// client secret for the given price.
//
// @Summary      Create a payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createIntentRequest  true  "Order price"
// @Success      200   {object}  createIntentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	secret, err := h.service.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, createIntentResponse{ClientSecret: secret})
}

// Record handles POST /payments — stores the completed checkout and clears
// the referenced cart items in one transaction. A duplicate submission of
// the same order is acknowledged without a second insert.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordPaymentRequest  true  "Completed payment"
// @Success      200   {object}  recordPaymentResponse  "duplicate submission"
// @Success      201   {object}  recordPaymentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Record(c.Request().Context(), ports.RecordPaymentInput{
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		Date:          req.Date,
		CartItemIDs:   req.CartItemIDs,
		MenuItemIDs:   req.MenuItemIDs,
		Status:        req.Status,
	})
	if err != nil {
		return err
	}
	if result.AlreadyRecorded {
		return c.JSON(http.StatusOK, recordPaymentResponse{Message: "payment already recorded"})
	}

	return c.JSON(http.StatusCreated, recordPaymentResponse{
		Message: "payment recorded",
		Payment: result.Payment,
	})
}
