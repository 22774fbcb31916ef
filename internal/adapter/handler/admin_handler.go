package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/pkg/httputil"
)

const maxImportSize = 2 << 20

type AdminHandler struct {
	adminSvc     AdminService
	scheduleSvc  ScheduleAdminService
	timetableSvc TimetableService
}

func NewAdminHandler(adminSvc AdminService, scheduleSvc ScheduleAdminService, timetableSvc TimetableService) *AdminHandler {
	return &AdminHandler{
		adminSvc:     adminSvc,
		scheduleSvc:  scheduleSvc,
		timetableSvc: timetableSvc,
	}
}

// Login godoc
//
//	@Summary	Administrator login
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		request.LoginRequest	true	"Credentials"
//	@Success	200		{object}	response.LoginResponse
//	@Failure	400		{object}	httputil.ErrorResponse
//	@Failure	401		{object}	httputil.ErrorResponse
//	@Router		/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	token, err := h.adminSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.LoginFromToken(token))
}

// PublishSchedule godoc
//
//	@Summary		Publish the mosque schedule for a date
//	@Description	Replaces the calculated schedule for the date with the given prayers
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			date	path		string							true	"Date (YYYY-MM-DD)"
//	@Param			request	body		request.PublishScheduleRequest	true	"Prayers in athan order"
//	@Success		200		{object}	response.ScheduleResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		401		{object}	httputil.ErrorResponse
//	@Router			/admin/schedules/{date} [put]
func (h *AdminHandler) PublishSchedule(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	var req request.PublishScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	prayers := make([]entity.Prayer, len(req.Prayers))
	for i, p := range req.Prayers {
		prayers[i] = entity.Prayer{Name: p.Name, Athan: p.Athan, Iqamah: p.Iqamah}
	}

	schedule, err := h.scheduleSvc.Publish(c.Request.Context(), date, prayers)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ScheduleFromEntity(schedule))
}

// ListSchedules godoc
//
//	@Summary	List published schedules
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page		query		int	false	"Page number"
//	@Param		per_page	query		int	false	"Days per page"
//	@Success	200			{object}	response.PublishedSchedulesResponse
//	@Failure	401			{object}	httputil.ErrorResponse
//	@Router		/admin/schedules [get]
func (h *AdminHandler) ListSchedules(c *gin.Context) {
	var req request.ListSchedulesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	schedules, pageInfo, err := h.scheduleSvc.ListPublished(c.Request.Context(), req.Page, req.PerPage)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PublishedSchedulesFromPage(schedules, pageInfo))
}

// UnpublishSchedule godoc
//
//	@Summary	Remove the published schedule for a date
//	@Tags		admin
//	@Security	BearerAuth
//	@Param		date	path	string	true	"Date (YYYY-MM-DD)"
//	@Success	204
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/admin/schedules/{date} [delete]
func (h *AdminHandler) UnpublishSchedule(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	if err := h.scheduleSvc.Unpublish(c.Request.Context(), date); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}

// ImportSchedules godoc
//
//	@Summary		Import published schedules from CSV
//	@Description	Accepts a date,name,athan,iqamah file as the request body or as the multipart field "file"
//	@Tags			admin
//	@Accept			text/csv
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.ImportResponse
//	@Failure		400	{object}	httputil.ErrorResponse
//	@Router			/admin/schedules/import [post]
func (h *AdminHandler) ImportSchedules(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)

	var body io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			httputil.ErrorWithCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "multipart field \"file\" is required")
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			httputil.InternalError(c)
			return
		}
		defer file.Close()
		body = file
	}

	result, err := h.scheduleSvc.ImportCSV(c.Request.Context(), body)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ImportFromResult(result))
}

// PublishTimetable godoc
//
//	@Summary	Publish a month timetable to object storage
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		year	path		int	true	"Year"
//	@Param		month	path		int	true	"Month (1-12)"
//	@Success	201		{object}	response.PublishTimetableResponse
//	@Failure	400		{object}	httputil.ErrorResponse
//	@Router		/admin/timetables/{year}/{month}/publish [post]
func (h *AdminHandler) PublishTimetable(c *gin.Context) {
	year, month, ok := parseMonthParams(c)
	if !ok {
		return
	}

	files, err := h.timetableSvc.Publish(c.Request.Context(), year, month)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.PublishTimetableFromFiles(files))
}
