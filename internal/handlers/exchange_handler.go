package handlers

import (
	goerrors "errors"
	"fmt"
	"net/http"

	"backoffice/internal/dto"
	"backoffice/internal/errors"
	"backoffice/internal/models"
	"backoffice/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ExchangeHandler handles currency exchange HTTP requests
type ExchangeHandler struct {
	exchangeService services.ExchangeServiceInterface
}

// NewExchangeHandler creates a new exchange handler
func NewExchangeHandler(exchangeService services.ExchangeServiceInterface) *ExchangeHandler {
	return &ExchangeHandler{exchangeService: exchangeService}
}

// CreateExchange records a new currency trade
// @Summary Record an exchange
// @Description Record a Buy or Sell trade. For buys the quantity is BDT paid; for sells it is foreign units. Sells that exceed the held reserve are rejected.
// @Tags Exchanges
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateExchangeRequest true "Trade details"
// @Success 201 {object} dto.DataResponse "Recorded exchange"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "DILAR_001 - Dilar not found"
// @Failure 422 {object} errors.ErrorResponse "RESERVE_002 - Insufficient reserve"
// @Router /exchanges [post]
func (h *ExchangeHandler) CreateExchange(c echo.Context) error {
	createdBy, err := getUserEmailFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateExchangeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	exchange, err := h.exchangeService.CreateExchange(&req, createdBy)
	if err != nil {
		return mapExchangeErr(c, err)
	}

	return c.JSON(http.StatusCreated, dto.DataResponse{Data: exchange})
}

// GetExchange retrieves a specific exchange by ID
// @Summary Get exchange by ID
// @Tags Exchanges
// @Security BearerAuth
// @Produce json
// @Param exchangeId path string true "Exchange ID (UUID)"
// @Success 200 {object} dto.DataResponse "Exchange details"
// @Failure 404 {object} errors.ErrorResponse "EXCHANGE_001 - Exchange not found"
// @Router /exchanges/{exchangeId} [get]
func (h *ExchangeHandler) GetExchange(c echo.Context) error {
	exchangeID, err := parseIDParam(c, "exchangeId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid exchange ID"))
	}

	exchange, err := h.exchangeService.GetExchange(exchangeID)
	if err != nil {
		if err == services.ErrExchangeNotFound {
			return SendError(c, errors.ExchangeNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DataResponse{Data: exchange})
}

// ListExchanges retrieves exchanges with filters and pagination
// @Summary List exchanges
// @Tags Exchanges
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Results per page (max 100)" default(20)
// @Param type query string false "Filter by type" Enums(Buy, Sell)
// @Param currency_code query string false "Filter by currency"
// @Param customer_type query string false "Filter by customer type" Enums(walk_in, dilar)
// @Param dilar_id query string false "Filter by dilar (UUID)"
// @Param search query string false "Match customer name or mobile number"
// @Param from_date query string false "Window start (YYYY-MM-DD)"
// @Param to_date query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.ExchangeListResponse "Paginated exchange list"
// @Router /exchanges [get]
func (h *ExchangeHandler) ListExchanges(c echo.Context) error {
	page := getIntParam(c, "page", 1)
	limit := getIntParam(c, "limit", 20)

	fromDate, err := getDateParam(c, "from_date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	toDate, err := getDateParam(c, "to_date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	filters := models.ExchangeFilters{
		Type:         c.QueryParam("type"),
		CurrencyCode: c.QueryParam("currency_code"),
		CustomerType: c.QueryParam("customer_type"),
		Search:       c.QueryParam("search"),
		FromDate:     fromDate,
		ToDate:       toDate,
	}

	if dilarIDStr := c.QueryParam("dilar_id"); dilarIDStr != "" {
		dilarID, err := uuid.Parse(dilarIDStr)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid dilar ID"))
		}
		filters.DilarID = &dilarID
	}

	exchanges, pagination, err := h.exchangeService.ListExchanges(filters, page, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ExchangeListResponse{
		Data:       exchanges,
		Pagination: pagination,
	})
}

// UpdateExchange partially updates a recorded trade
// @Summary Update exchange
// @Description Update trade fields. The affected currency reserves are replayed; edits that would overdraw a reserve at any point in history are rejected.
// @Tags Exchanges
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param exchangeId path string true "Exchange ID (UUID)"
// @Param request body dto.UpdateExchangeRequest true "Fields to update"
// @Success 200 {object} dto.DataResponse "Updated exchange"
// @Failure 404 {object} errors.ErrorResponse "EXCHANGE_001 - Exchange not found"
// @Failure 422 {object} errors.ErrorResponse "RESERVE_002 - Edit would overdraw reserve"
// @Router /exchanges/{exchangeId} [put]
func (h *ExchangeHandler) UpdateExchange(c echo.Context) error {
	exchangeID, err := parseIDParam(c, "exchangeId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid exchange ID"))
	}

	var req dto.UpdateExchangeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	exchange, err := h.exchangeService.UpdateExchange(exchangeID, &req)
	if err != nil {
		return mapExchangeErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.DataResponse{Data: exchange})
}

// DeleteExchange removes a trade from the ledger
// @Summary Delete exchange
// @Description Remove a trade. The currency's reserve is replayed without it; deletions that would overdraw the remaining history are rejected.
// @Tags Exchanges
// @Security BearerAuth
// @Produce json
// @Param exchangeId path string true "Exchange ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Exchange deleted"
// @Failure 404 {object} errors.ErrorResponse "EXCHANGE_001 - Exchange not found"
// @Failure 422 {object} errors.ErrorResponse "RESERVE_002 - Deletion would overdraw reserve"
// @Router /exchanges/{exchangeId} [delete]
func (h *ExchangeHandler) DeleteExchange(c echo.Context) error {
	exchangeID, err := parseIDParam(c, "exchangeId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid exchange ID"))
	}

	if err := h.exchangeService.DeleteExchange(exchangeID); err != nil {
		return mapExchangeErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Exchange deleted successfully"})
}

// GetReserves retrieves current per-currency reserves
// @Summary Get currency reserves
// @Description Current holdings per currency with weighted average cost and realized profit/loss
// @Tags Exchanges
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ReservesResponse "Reserves with summary"
// @Router /exchanges/reserves [get]
func (h *ExchangeHandler) GetReserves(c echo.Context) error {
	reserves, err := h.exchangeService.GetReserves()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, reserves)
}

// GetDashboard retrieves per-currency trade aggregates for a window
// @Summary Get exchange dashboard
// @Tags Exchanges
// @Security BearerAuth
// @Produce json
// @Param currency_code query string false "Limit to one currency"
// @Param from_date query string false "Window start (YYYY-MM-DD)"
// @Param to_date query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.DashboardResponse "Per-currency aggregates with totals"
// @Router /exchanges/dashboard [get]
func (h *ExchangeHandler) GetDashboard(c echo.Context) error {
	fromDate, err := getDateParam(c, "from_date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	toDate, err := getDateParam(c, "to_date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	dashboard, err := h.exchangeService.GetDashboard(c.QueryParam("currency_code"), fromDate, toDate)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dashboard)
}

// DownloadReceipt streams a printable receipt for a trade
// @Summary Download exchange receipt
// @Tags Exchanges
// @Security BearerAuth
// @Produce text/plain
// @Param exchangeId path string true "Exchange ID (UUID)"
// @Success 200 {string} string "Plain-text receipt"
// @Failure 404 {object} errors.ErrorResponse "EXCHANGE_001 - Exchange not found"
// @Router /exchanges/{exchangeId}/receipt [get]
func (h *ExchangeHandler) DownloadReceipt(c echo.Context) error {
	exchangeID, err := parseIDParam(c, "exchangeId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid exchange ID"))
	}

	receipt, err := h.exchangeService.GenerateReceipt(exchangeID)
	if err != nil {
		if err == services.ErrExchangeNotFound {
			return SendError(c, errors.ExchangeNotFound)
		}
		return SendSystemError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="receipt-%s.txt"`, exchangeID.String()[:8]))

	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", receipt)
}

func mapExchangeErr(c echo.Context, err error) error {
	if err == services.ErrExchangeNotFound {
		return SendError(c, errors.ExchangeNotFound)
	}
	if err == services.ErrDilarNotFound {
		return SendError(c, errors.DilarNotFound)
	}
	if err == services.ErrDilarRequired {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails(err.Error()))
	}
	if err == services.ErrInvalidRate {
		return SendError(c, errors.ExchangeInvalidRate)
	}
	if err == services.ErrInvalidQuantity {
		return SendError(c, errors.ExchangeInvalidQuantity)
	}
	if goerrors.Is(err, services.ErrInsufficientReserve) {
		return SendError(c, errors.ReserveInsufficient, errors.WithDetails(err.Error()))
	}

	return SendSystemError(c, err)
}
