package response

import (
	"time"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/admin"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/prayer"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/timetable"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func LoginFromToken(t *admin.Token) LoginResponse {
	return LoginResponse{
		AccessToken: t.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   t.ExpiresAt,
	}
}

type ImportResponse struct {
	Days    int `json:"days"`
	Prayers int `json:"prayers"`
}

func ImportFromResult(r *prayer.ImportResult) ImportResponse {
	return ImportResponse{Days: r.Days, Prayers: r.Prayers}
}

type PublishedFileResponse struct {
	Format string `json:"format"`
	Key    string `json:"key"`
	URL    string `json:"url"`
}

type PublishTimetableResponse struct {
	Files []PublishedFileResponse `json:"files"`
}

func PublishTimetableFromFiles(files []timetable.PublishedFile) PublishTimetableResponse {
	resp := PublishTimetableResponse{Files: make([]PublishedFileResponse, 0, len(files))}
	for _, f := range files {
		resp.Files = append(resp.Files, PublishedFileResponse{Format: f.Format, Key: f.Key, URL: f.URL})
	}
	return resp
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type PublishedSchedulesResponse struct {
	Schedules  []ScheduleResponse `json:"schedules"`
	Pagination PaginationResponse `json:"pagination"`
}

func PublishedSchedulesFromPage(schedules []entity.DailySchedule, info *pagination.Info) PublishedSchedulesResponse {
	return PublishedSchedulesResponse{
		Schedules: SchedulesFromEntities(schedules).Schedules,
		Pagination: PaginationResponse{
			Page:       info.Page,
			PerPage:    info.PerPage,
			TotalItems: info.TotalItems,
			TotalPages: info.TotalPages,
			HasNext:    info.HasNext,
			HasPrev:    info.HasPrev,
		},
	}
}
