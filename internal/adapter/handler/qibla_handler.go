package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/pkg/httputil"
)

type QiblaHandler struct {
	qiblaSvc QiblaService
}

func NewQiblaHandler(qiblaSvc QiblaService) *QiblaHandler {
	return &QiblaHandler{qiblaSvc: qiblaSvc}
}

// Direction godoc
//
//	@Summary		Qibla direction
//	@Description	Great-circle bearing and distance to the Kaaba; with a device heading, the rotation a compass needle needs
//	@Tags			qibla
//	@Produce		json
//	@Param			latitude	query		number	true	"Latitude"
//	@Param			longitude	query		number	true	"Longitude"
//	@Param			heading		query		number	false	"Device heading in degrees"
//	@Success		200			{object}	response.QiblaResponse
//	@Failure		400			{object}	httputil.ErrorResponse
//	@Router			/qibla [get]
func (h *QiblaHandler) Direction(c *gin.Context) {
	var req request.QiblaQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	loc := valueobject.NewLocation(*req.Latitude, *req.Longitude)
	direction, err := h.qiblaSvc.Direction(c.Request.Context(), *loc, req.Heading)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.QiblaFromDirection(direction))
}

// Path godoc
//
//	@Summary	Great-circle path to the Kaaba
//	@Tags		qibla
//	@Produce	json
//	@Param		latitude	query		number	true	"Latitude"
//	@Param		longitude	query		number	true	"Longitude"
//	@Param		segments	query		int		false	"Number of segments (default 32)"
//	@Success	200			{object}	map[string]any	"GeoJSON Feature"
//	@Failure	400			{object}	httputil.ErrorResponse
//	@Router		/qibla/path [get]
func (h *QiblaHandler) Path(c *gin.Context) {
	var req request.QiblaPathQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	loc := valueobject.NewLocation(*req.Latitude, *req.Longitude)
	path, result, err := h.qiblaSvc.Path(c.Request.Context(), *loc, req.Segments)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/geo+json")
	httputil.OK(c, response.QiblaPathFeature(path, result))
}
