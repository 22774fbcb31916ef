package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/prayer"
)

type PrayerHandler struct {
	prayerSvc PrayerService
}

func NewPrayerHandler(prayerSvc PrayerService) *PrayerHandler {
	return &PrayerHandler{prayerSvc: prayerSvc}
}

// Today godoc
//
//	@Summary		Today's prayer times
//	@Description	Mosque schedule for today, or the calculated schedule at a coordinate
//	@Tags			prayer-times
//	@Produce		json
//	@Param			latitude	query		number	false	"Latitude"
//	@Param			longitude	query		number	false	"Longitude"
//	@Param			timezone	query		string	false	"IANA timezone"
//	@Success		200			{object}	response.ScheduleResponse
//	@Failure		400			{object}	httputil.ErrorResponse
//	@Router			/prayer-times/today [get]
func (h *PrayerHandler) Today(c *gin.Context) {
	h.single(c, false, h.prayerSvc.Today)
}

// TodayAtLocation godoc
//
//	@Summary	Today's prayer times at a coordinate
//	@Tags		prayer-times
//	@Produce	json
//	@Param		latitude	query		number	true	"Latitude"
//	@Param		longitude	query		number	true	"Longitude"
//	@Param		timezone	query		string	false	"IANA timezone"
//	@Success	200			{object}	response.ScheduleResponse
//	@Failure	400			{object}	httputil.ErrorResponse
//	@Router		/prayer-times/today/location [get]
func (h *PrayerHandler) TodayAtLocation(c *gin.Context) {
	h.single(c, true, h.prayerSvc.Today)
}

// Tomorrow godoc
//
//	@Summary	Tomorrow's prayer times
//	@Tags		prayer-times
//	@Produce	json
//	@Param		latitude	query		number	false	"Latitude"
//	@Param		longitude	query		number	false	"Longitude"
//	@Param		timezone	query		string	false	"IANA timezone"
//	@Success	200			{object}	response.ScheduleResponse
//	@Failure	400			{object}	httputil.ErrorResponse
//	@Router		/prayer-times/tomorrow [get]
func (h *PrayerHandler) Tomorrow(c *gin.Context) {
	h.single(c, false, h.prayerSvc.Tomorrow)
}

func (h *PrayerHandler) TomorrowAtLocation(c *gin.Context) {
	h.single(c, true, h.prayerSvc.Tomorrow)
}

// ForDate godoc
//
//	@Summary	Prayer times for a date
//	@Tags		prayer-times
//	@Produce	json
//	@Param		date		path		string	true	"Date (YYYY-MM-DD)"
//	@Param		latitude	query		number	false	"Latitude"
//	@Param		longitude	query		number	false	"Longitude"
//	@Param		timezone	query		string	false	"IANA timezone"
//	@Success	200			{object}	response.ScheduleResponse
//	@Failure	400			{object}	httputil.ErrorResponse
//	@Router		/prayer-times/{date} [get]
func (h *PrayerHandler) ForDate(c *gin.Context) {
	h.forDate(c, false)
}

func (h *PrayerHandler) ForDateAtLocation(c *gin.Context) {
	h.forDate(c, true)
}

func (h *PrayerHandler) forDate(c *gin.Context, locationRequired bool) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}
	h.single(c, locationRequired, func(ctx context.Context, q prayer.Query) (*entity.DailySchedule, error) {
		return h.prayerSvc.ForDate(ctx, date, q)
	})
}

// Week godoc
//
//	@Summary	Seven days of prayer times starting today
//	@Tags		prayer-times
//	@Produce	json
//	@Param		latitude	query		number	false	"Latitude"
//	@Param		longitude	query		number	false	"Longitude"
//	@Param		timezone	query		string	false	"IANA timezone"
//	@Success	200			{object}	response.SchedulesResponse
//	@Failure	400			{object}	httputil.ErrorResponse
//	@Router		/prayer-times/week [get]
func (h *PrayerHandler) Week(c *gin.Context) {
	q, ok := bindLocation(c, false)
	if !ok {
		return
	}

	schedules, err := h.prayerSvc.Week(c.Request.Context(), q)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.SchedulesFromEntities(schedules))
}

// Month godoc
//
//	@Summary	Prayer times for every day of a month
//	@Tags		prayer-times
//	@Produce	json
//	@Param		year		path		int		true	"Year"
//	@Param		month		path		int		true	"Month (1-12)"
//	@Param		latitude	query		number	false	"Latitude"
//	@Param		longitude	query		number	false	"Longitude"
//	@Param		timezone	query		string	false	"IANA timezone"
//	@Success	200			{object}	response.SchedulesResponse
//	@Failure	400			{object}	httputil.ErrorResponse
//	@Router		/prayer-times/month/{year}/{month} [get]
func (h *PrayerHandler) Month(c *gin.Context) {
	year, month, ok := parseMonthParams(c)
	if !ok {
		return
	}
	q, ok := bindLocation(c, false)
	if !ok {
		return
	}

	schedules, err := h.prayerSvc.Month(c.Request.Context(), year, month, q)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.SchedulesFromEntities(schedules))
}

// Jummah godoc
//
//	@Summary	Friday congregation time
//	@Tags		prayer-times
//	@Produce	json
//	@Success	200	{object}	response.ScheduleResponse
//	@Router		/prayer-times/jummah [get]
func (h *PrayerHandler) Jummah(c *gin.Context) {
	schedule, err := h.prayerSvc.Jummah(c.Request.Context())
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ScheduleFromEntity(schedule))
}

// Current godoc
//
//	@Summary		Current and next prayer
//	@Description	Resolves today's schedule at the given clock time, or now
//	@Tags			prayer-times
//	@Produce		json
//	@Param			at			query		string	false	"Clock time such as 13:30 or 1:30 PM"
//	@Param			latitude	query		number	false	"Latitude"
//	@Param			longitude	query		number	false	"Longitude"
//	@Param			timezone	query		string	false	"IANA timezone"
//	@Success		200			{object}	response.CurrentResponse
//	@Failure		400			{object}	httputil.ErrorResponse
//	@Failure		404			{object}	httputil.ErrorResponse	"No parseable prayers"
//	@Router			/prayer-times/current [get]
func (h *PrayerHandler) Current(c *gin.Context) {
	var req request.CurrentQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	q, ok := locationQuery(c, req.Location(), false)
	if !ok {
		return
	}

	var at *valueobject.ClockTime
	if req.At != "" {
		clock, err := valueobject.ParseClock(req.At)
		if err != nil {
			httputil.HandleError(c, err)
			return
		}
		at = &clock
	}

	current, err := h.prayerSvc.Current(c.Request.Context(), q, at)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.CurrentFromResult(current))
}

func (h *PrayerHandler) single(
	c *gin.Context,
	locationRequired bool,
	get func(ctx context.Context, q prayer.Query) (*entity.DailySchedule, error),
) {
	q, ok := bindLocation(c, locationRequired)
	if !ok {
		return
	}

	schedule, err := get(c.Request.Context(), q)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ScheduleFromEntity(schedule))
}

func bindLocation(c *gin.Context, required bool) (prayer.Query, bool) {
	var req request.LocationQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return prayer.Query{}, false
	}
	return locationQuery(c, req, required)
}

func locationQuery(c *gin.Context, req request.LocationQuery, required bool) (prayer.Query, bool) {
	q := prayer.Query{Timezone: req.Timezone}

	switch {
	case req.Latitude != nil && req.Longitude != nil:
		q.Location = valueobject.NewLocation(*req.Latitude, *req.Longitude)
	case req.Latitude != nil || req.Longitude != nil:
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_LOCATION", "latitude and longitude must be given together")
		return q, false
	case required:
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_LOCATION", "latitude and longitude are required")
		return q, false
	}

	return q, true
}

func parseDateParam(c *gin.Context) (time.Time, bool) {
	date, err := time.Parse(time.DateOnly, c.Param("date"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_DATE", "date must be formatted YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}

func parseMonthParams(c *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 || year > 9999 {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_DATE", "invalid year")
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_DATE", "month must be between 1 and 12")
		return 0, 0, false
	}
	return year, time.Month(month), true
}
