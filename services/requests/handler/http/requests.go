package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/liquex/liquex/internal/pkg/middleware"
	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/liquex/liquex/internal/utils"
	"github.com/liquex/liquex/services/requests"
)

// RequestHandler exposes the request lifecycle over HTTP
type RequestHandler struct {
	requestUC requests.RequestUC
	cfg       *models.Config
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestUC requests.RequestUC, cfg *models.Config) *RequestHandler {
	return &RequestHandler{
		requestUC: requestUC,
		cfg:       cfg,
	}
}

// Raise handles POST /requests
func (h *RequestHandler) Raise(c echo.Context) error {
	var input models.RaiseRequestInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	requesterID := middleware.UserIDFromContext(c)
	request, err := h.requestUC.Raise(c.Request().Context(), requesterID, &input)
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Request raised", request)
}

// Feed handles GET /requests/feed. The observer location comes from the lat
// and lng query params; when absent the feed degrades to unfiltered results
// with unknown distances.
func (h *RequestHandler) Feed(c echo.Context) error {
	observerID := middleware.UserIDFromContext(c)

	var origin *models.Location
	latParam := c.QueryParam("lat")
	lngParam := c.QueryParam("lng")
	if (latParam == "") != (lngParam == "") {
		return utils.BadRequestResponse(c, "lat and lng must be supplied together")
	}
	if latParam != "" && lngParam != "" {
		lat, err := strconv.ParseFloat(latParam, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid lat parameter")
		}
		lng, err := strconv.ParseFloat(lngParam, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid lng parameter")
		}
		origin = &models.Location{Latitude: lat, Longitude: lng}
	}

	maxDistance := h.cfg.Match.MaxDistanceMeters
	if param := c.QueryParam("max_distance_meters"); param != "" {
		parsed, err := strconv.ParseFloat(param, 64)
		if err != nil || parsed < 0 {
			return utils.BadRequestResponse(c, "invalid max_distance_meters parameter")
		}
		maxDistance = parsed
	}

	feed, err := h.requestUC.Feed(c.Request().Context(), observerID, origin, maxDistance)
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby requests", feed)
}

// Get handles GET /requests/:id
func (h *RequestHandler) Get(c echo.Context) error {
	request, err := h.requestUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request details", request)
}

// Accept handles POST /requests/:id/accept
func (h *RequestHandler) Accept(c echo.Context) error {
	responderID := middleware.UserIDFromContext(c)
	request, err := h.requestUC.Accept(c.Request().Context(), c.Param("id"), responderID)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request accepted", request)
}

// Reject handles POST /requests/:id/reject
func (h *RequestHandler) Reject(c echo.Context) error {
	request, err := h.requestUC.Reject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request rejected", request)
}

// Cancel handles POST /requests/:id/cancel
func (h *RequestHandler) Cancel(c echo.Context) error {
	request, err := h.requestUC.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request cancelled", request)
}

// ShareLocation handles POST /requests/:id/location
func (h *RequestHandler) ShareLocation(c echo.Context) error {
	var location models.Location
	if err := c.Bind(&location); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	request, err := h.requestUC.ShareLocation(c.Request().Context(), c.Param("id"), location)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Meetup location shared", request)
}

type verifyRequest struct {
	Code string `json:"code"`
}

// Verify handles POST /requests/:id/verify
func (h *RequestHandler) Verify(c echo.Context) error {
	var body verifyRequest
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	record, err := h.requestUC.Verify(c.Request().Context(), c.Param("id"), body.Code)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Handover verified", record)
}

// Transactions handles GET /transactions
func (h *RequestHandler) Transactions(c echo.Context) error {
	records, err := h.requestUC.ListTransactions(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transaction history", records)
}
