package request

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,max=128"`
}

type PrayerRequest struct {
	Name   string `json:"name" binding:"required,max=32"`
	Athan  string `json:"athan" binding:"required,max=16"`
	Iqamah string `json:"iqamah" binding:"required,max=16"`
}

type PublishScheduleRequest struct {
	Prayers []PrayerRequest `json:"prayers" binding:"required,min=1,max=12,dive"`
}

type ListSchedulesRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=366"`
}
