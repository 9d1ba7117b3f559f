package geom

// Point is a geographic coordinate (WGS 84).
type Point struct {
	Lat float64
	Lon float64
}

// BBox is a geographic bounding box.
type BBox struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// BoundsOf returns the minimal bounding box containing all points.
// The zero BBox is returned for an empty input.
func BoundsOf(points ...Point) BBox {
	if len(points) == 0 {
		return BBox{}
	}
	b := BBox{
		MinLat: points[0].Lat, MaxLat: points[0].Lat,
		MinLon: points[0].Lon, MaxLon: points[0].Lon,
	}
	for _, p := range points[1:] {
		if p.Lat < b.MinLat {
			b.MinLat = p.Lat
		}
		if p.Lat > b.MaxLat {
			b.MaxLat = p.Lat
		}
		if p.Lon < b.MinLon {
			b.MinLon = p.Lon
		}
		if p.Lon > b.MaxLon {
			b.MaxLon = p.Lon
		}
	}
	return b
}

// Pad expands the box on every side by frac of the corresponding span,
// with a floor of minMargin degrees. The floor keeps the box non-degenerate
// when all points coincide.
func (b BBox) Pad(frac, minMargin float64) BBox {
	latPad := (b.MaxLat - b.MinLat) * frac
	if latPad < minMargin {
		latPad = minMargin
	}
	lonPad := (b.MaxLon - b.MinLon) * frac
	if lonPad < minMargin {
		lonPad = minMargin
	}
	return BBox{
		MinLat: b.MinLat - latPad,
		MinLon: b.MinLon - lonPad,
		MaxLat: b.MaxLat + latPad,
		MaxLon: b.MaxLon + lonPad,
	}
}

// Contains reports whether p lies inside the box, borders included.
func (b BBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}
