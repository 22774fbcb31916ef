// Package calculation derives daily prayer times from the sun's position.
//
// Sun declination and the equation of time come from the low-precision
// almanac formulas of the U.S. Naval Observatory, refined once at the
// approximate time of each event. Times are computed in local solar hours
// and converted to UTC using the observer's longitude.
package calculation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/valueobject"
)

type Madhab string

const (
	MadhabStandard Madhab = "standard"
	MadhabHanafi   Madhab = "hanafi"
)

// Method holds the twilight angles of a calculation convention. When
// IshaInterval is set, Isha follows Maghrib by that duration instead of an angle.
type Method struct {
	Name         string
	FajrAngle    float64
	IshaAngle    float64
	IshaInterval time.Duration
}

var (
	MethodISNA    = Method{Name: "ISNA", FajrAngle: 15, IshaAngle: 15}
	MethodMWL     = Method{Name: "MWL", FajrAngle: 18, IshaAngle: 17}
	MethodEgypt   = Method{Name: "Egypt", FajrAngle: 19.5, IshaAngle: 17.5}
	MethodKarachi = Method{Name: "Karachi", FajrAngle: 18, IshaAngle: 18}
	MethodMakkah  = Method{Name: "Makkah", FajrAngle: 18.5, IshaInterval: 90 * time.Minute}
)

var methods = map[string]Method{
	"isna":    MethodISNA,
	"mwl":     MethodMWL,
	"egypt":   MethodEgypt,
	"karachi": MethodKarachi,
	"makkah":  MethodMakkah,
}

func LookupMethod(name string) (Method, error) {
	m, ok := methods[strings.ToLower(name)]
	if !ok {
		return Method{}, fmt.Errorf("unknown calculation method %q", name)
	}
	return m, nil
}

func ParseMadhab(name string) (Madhab, error) {
	switch Madhab(strings.ToLower(name)) {
	case MadhabStandard, "shafi":
		return MadhabStandard, nil
	case MadhabHanafi:
		return MadhabHanafi, nil
	}
	return "", fmt.Errorf("unknown madhab %q", name)
}

type Params struct {
	Method Method
	Madhab Madhab
}

func DefaultParams() Params {
	return Params{Method: MethodISNA, Madhab: MadhabStandard}
}

// Times are the day's events in the requested zone, strictly ascending and
// all on the requested civil date.
type Times struct {
	Fajr    time.Time
	Sunrise time.Time
	Dhuhr   time.Time
	Asr     time.Time
	Maghrib time.Time
	Isha    time.Time
}

const (
	horizonAngle = 0.833
	julianEpoch  = 2451545.0
)

type Calculator struct {
	params Params
}

func NewCalculator(params Params) *Calculator {
	if params.Madhab == "" {
		params.Madhab = MadhabStandard
	}
	return &Calculator{params: params}
}

func (c *Calculator) Params() Params {
	return c.params
}

// Times computes the prayer times of date's civil day at loc, expressed in zone.
// The result always ascends from Fajr to Isha within that day in zone;
// ErrCalculationUnavailable is returned when it cannot.
func (c *Calculator) Times(date time.Time, loc valueobject.Location, zone *time.Location) (Times, error) {
	if !loc.IsValid() {
		return Times{}, domain.ErrInvalidLocation
	}
	if zone == nil {
		zone = time.UTC
	}

	y, m, d := date.Date()
	day := dayContext{
		jd:  julianDay(y, int(m), d) - loc.Longitude/(15*24),
		lat: loc.Latitude,
	}

	fajr := day.sunAngleTime(c.params.Method.FajrAngle, 5.0/24, true)
	sunrise := day.sunAngleTime(horizonAngle, 6.0/24, true)
	dhuhr := day.midDay(12.0 / 24)
	asr := day.asrTime(c.asrFactor(), 13.0/24)
	sunset := day.sunAngleTime(horizonAngle, 18.0/24, false)

	if math.IsNaN(sunrise) || math.IsNaN(sunset) {
		return Times{}, fmt.Errorf("%w: sun does not cross the horizon", domain.ErrCalculationUnavailable)
	}

	var isha float64
	if c.params.Method.IshaInterval > 0 {
		isha = sunset + c.params.Method.IshaInterval.Hours()
	} else {
		isha = day.sunAngleTime(c.params.Method.IshaAngle, 18.0/24, false)
	}

	// angle-based night portions for latitudes where twilight never ends
	night := timeDiff(sunset, sunrise)
	fajrPortion := c.params.Method.FajrAngle / 60 * night
	if math.IsNaN(fajr) || timeDiff(fajr, sunrise) > fajrPortion {
		fajr = sunrise - fajrPortion
	}
	if c.params.Method.IshaInterval == 0 {
		ishaPortion := c.params.Method.IshaAngle / 60 * night
		if math.IsNaN(isha) || timeDiff(sunset, isha) > ishaPortion {
			isha = sunset + ishaPortion
		}
	}
	if math.IsNaN(asr) {
		return Times{}, fmt.Errorf("%w: asr shadow length unreachable", domain.ErrCalculationUnavailable)
	}

	toTime := func(solarHours float64) time.Time {
		utcHours := solarHours - loc.Longitude/15
		base := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		t := base.Add(time.Duration(utcHours * float64(time.Hour)))
		return t.Add(30 * time.Second).Truncate(time.Minute).In(zone)
	}

	times := Times{
		Fajr:    toTime(fajr),
		Sunrise: toTime(sunrise),
		Dhuhr:   toTime(dhuhr),
		Asr:     toTime(asr),
		Maghrib: toTime(sunset),
		Isha:    toTime(isha),
	}

	// Isha past midnight or Fajr before it falls back to one seventh of the
	// night, then to the edge of the civil day.
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, zone)
	dayEnd := dayStart.AddDate(0, 0, 1)
	lastMinute := dayEnd.Add(-time.Minute)
	if times.Isha.After(lastMinute) {
		times.Isha = toTime(sunset + night/7)
		if times.Isha.After(lastMinute) {
			times.Isha = lastMinute
		}
	}
	if times.Fajr.Before(dayStart) {
		times.Fajr = toTime(sunrise - night/7)
		if times.Fajr.Before(dayStart) {
			times.Fajr = dayStart
		}
	}

	if !times.within(dayStart, dayEnd) {
		return Times{}, fmt.Errorf("%w: prayers do not fit in the civil day of %s", domain.ErrCalculationUnavailable, zone)
	}

	return times, nil
}

// within reports whether the times ascend strictly inside [start, end).
func (t Times) within(start, end time.Time) bool {
	seq := []time.Time{t.Fajr, t.Sunrise, t.Dhuhr, t.Asr, t.Maghrib, t.Isha}
	if seq[0].Before(start) || !seq[len(seq)-1].Before(end) {
		return false
	}
	for i := 1; i < len(seq); i++ {
		if !seq[i].After(seq[i-1]) {
			return false
		}
	}
	return true
}

func (c *Calculator) asrFactor() float64 {
	if c.params.Madhab == MadhabHanafi {
		return 2
	}
	return 1
}

type dayContext struct {
	jd  float64
	lat float64
}

func (d dayContext) sunPosition(portion float64) (declination, equation float64) {
	days := d.jd + portion - julianEpoch

	g := fixAngle(357.529 + 0.98560028*days)
	q := fixAngle(280.459 + 0.98564736*days)
	l := fixAngle(q + 1.915*sinDeg(g) + 0.020*sinDeg(2*g))
	e := 23.439 - 0.00000036*days

	ra := atan2Deg(cosDeg(e)*sinDeg(l), cosDeg(l)) / 15
	equation = q/15 - fixHour(ra)
	declination = asinDeg(sinDeg(e) * sinDeg(l))
	return declination, equation
}

func (d dayContext) midDay(portion float64) float64 {
	_, eqt := d.sunPosition(portion)
	return fixHour(12 - eqt)
}

// sunAngleTime returns when the sun is angle degrees below the horizon,
// before noon when ccw is set. NaN when the sun never reaches that angle.
func (d dayContext) sunAngleTime(angle, portion float64, ccw bool) float64 {
	decl, _ := d.sunPosition(portion)
	noon := d.midDay(portion)

	cosH := (-sinDeg(angle) - sinDeg(decl)*sinDeg(d.lat)) / (cosDeg(decl) * cosDeg(d.lat))
	if cosH < -1 || cosH > 1 {
		return math.NaN()
	}

	t := acosDeg(cosH) / 15
	if ccw {
		return noon - t
	}
	return noon + t
}

func (d dayContext) asrTime(factor, portion float64) float64 {
	decl, _ := d.sunPosition(portion)
	angle := -acotDeg(factor + tanDeg(math.Abs(d.lat-decl)))
	return d.sunAngleTime(angle, portion, false)
}

func julianDay(year, month, day int) float64 {
	if month <= 2 {
		year--
		month += 12
	}
	a := math.Floor(float64(year) / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*float64(year+4716)) + math.Floor(30.6001*float64(month+1)) + float64(day) + b - 1524.5
}

func timeDiff(from, to float64) float64 {
	return fixHour(to - from)
}

func fixAngle(a float64) float64 {
	return fix(a, 360)
}

func fixHour(h float64) float64 {
	return fix(h, 24)
}

func fix(a, b float64) float64 {
	a -= b * math.Floor(a/b)
	if a < 0 {
		return a + b
	}
	return a
}

func sinDeg(d float64) float64 { return math.Sin(d * math.Pi / 180) }
func cosDeg(d float64) float64 { return math.Cos(d * math.Pi / 180) }
func tanDeg(d float64) float64 { return math.Tan(d * math.Pi / 180) }

func asinDeg(x float64) float64     { return math.Asin(x) * 180 / math.Pi }
func acosDeg(x float64) float64     { return math.Acos(x) * 180 / math.Pi }
func acotDeg(x float64) float64     { return math.Atan(1/x) * 180 / math.Pi }
func atan2Deg(y, x float64) float64 { return math.Atan2(y, x) * 180 / math.Pi }
