package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// Finder resolves the IANA timezone containing a coordinate.
type Finder struct {
	finder tzf.F
}

var (
	instance *Finder
	initErr  error
	once     sync.Once
)

// NewFinder returns the process-wide finder. The timezone polygons are loaded
// into memory once.
func NewFinder() (*Finder, error) {
	once.Do(func() {
		f, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("initializing timezone finder: %w", err)
			return
		}
		instance = &Finder{finder: f}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// Lookup returns names such as "America/Indiana/Indianapolis".
func (f *Finder) Lookup(latitude, longitude float64) (string, error) {
	name := f.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("no timezone for lat=%f lng=%f", latitude, longitude)
	}
	return name, nil
}
