package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/liquex/liquex/internal/utils"
	"github.com/liquex/liquex/services/location"
)

// MeetupHandler exposes the meetup spot catalog over HTTP
type MeetupHandler struct {
	locationUC location.LocationUC
}

// NewMeetupHandler creates a new meetup handler
func NewMeetupHandler(locationUC location.LocationUC) *MeetupHandler {
	return &MeetupHandler{locationUC: locationUC}
}

// MeetupSpots handles GET /meetup-spots. With lat and lng query params the
// catalog comes back ranked by distance; without them the raw catalog.
func (h *MeetupHandler) MeetupSpots(c echo.Context) error {
	latParam := c.QueryParam("lat")
	lngParam := c.QueryParam("lng")
	if (latParam == "") != (lngParam == "") {
		return utils.BadRequestResponse(c, "lat and lng must be supplied together")
	}

	if latParam == "" && lngParam == "" {
		spots, err := h.locationUC.ListMeetupSpots(c.Request().Context())
		if err != nil {
			return utils.InternalServerErrorResponse(c, "")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Meetup spots", spots)
	}

	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid lat parameter")
	}
	lng, err := strconv.ParseFloat(lngParam, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid lng parameter")
	}

	ranked, err := h.locationUC.RankedMeetupSpots(c.Request().Context(), &models.Location{Latitude: lat, Longitude: lng})
	if err != nil {
		return utils.InternalServerErrorResponse(c, "")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ranked meetup spots", ranked)
}
