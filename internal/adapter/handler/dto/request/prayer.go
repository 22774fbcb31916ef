package request

type LocationQuery struct {
	Latitude  *float64 `form:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `form:"longitude" binding:"omitempty,min=-180,max=180"`
	Timezone  string   `form:"timezone" binding:"omitempty,max=64"`
}

type CurrentQuery struct {
	Latitude  *float64 `form:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `form:"longitude" binding:"omitempty,min=-180,max=180"`
	Timezone  string   `form:"timezone" binding:"omitempty,max=64"`
	At        string   `form:"at" binding:"omitempty,max=16"`
}

func (q CurrentQuery) Location() LocationQuery {
	return LocationQuery{Latitude: q.Latitude, Longitude: q.Longitude, Timezone: q.Timezone}
}
