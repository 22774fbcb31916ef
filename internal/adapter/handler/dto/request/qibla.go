package request

type QiblaQuery struct {
	Latitude  *float64 `form:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `form:"longitude" binding:"required,min=-180,max=180"`
	Heading   *float64 `form:"heading" binding:"omitempty,min=-360,max=360"`
}

type QiblaPathQuery struct {
	Latitude  *float64 `form:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `form:"longitude" binding:"required,min=-180,max=180"`
	Segments  int      `form:"segments" binding:"omitempty,min=1,max=512"`
}
