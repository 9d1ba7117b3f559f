// Package sites holds the fixed revelation sites. Exactly two exist, one
// per revelation tag, and they never change.
package sites

import (
	"ayat-atlas/internal/api"
	"ayat-atlas/internal/geom"
)

type Site struct {
	Name  string
	Point geom.Point
}

var (
	mecca  = Site{Name: "Mecca", Point: geom.Point{Lat: 21.4225, Lon: 39.8262}}
	medina = Site{Name: "Medina", Point: geom.Point{Lat: 24.5247, Lon: 39.5692}}
)

// ForTag returns the revelation site for a tag.
func ForTag(t api.Tag) Site {
	if t == api.TagMedinan {
		return medina
	}
	return mecca
}
