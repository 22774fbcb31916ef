package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/pkg/httputil"
)

type TimetableHandler struct {
	timetableSvc TimetableService
}

func NewTimetableHandler(timetableSvc TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableSvc: timetableSvc}
}

// Download godoc
//
//	@Summary	Download a month timetable
//	@Tags		timetables
//	@Produce	application/pdf
//	@Produce	text/csv
//	@Param		year	path		int		true	"Year"
//	@Param		month	path		int		true	"Month (1-12)"
//	@Param		format	query		string	false	"csv or pdf (default pdf)"
//	@Success	200		{file}		file
//	@Failure	400		{object}	httputil.ErrorResponse
//	@Router		/timetables/{year}/{month} [get]
func (h *TimetableHandler) Download(c *gin.Context) {
	year, month, ok := parseMonthParams(c)
	if !ok {
		return
	}

	file, err := h.timetableSvc.Render(c.Request.Context(), year, month, c.DefaultQuery("format", "pdf"))
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Attachment(c, file.Name, file.ContentType, file.Body)
}
