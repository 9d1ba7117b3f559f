// Package mapview renders two geographic markers on a braille terminal
// canvas: the place a verse's subject matter concerns and the place the
// verse was revealed.
package mapview

import (
	"fmt"
	"strings"

	"ayat-atlas/internal/geom"

	"github.com/charmbracelet/lipgloss"
)

// Viewport padding around the marker bounding box: a fraction of each span
// with a floor in degrees so coincident markers still get a visible region.
const (
	padFraction = 0.15
	padMinimum  = 0.05
)

// Role distinguishes the two marker slots. There are exactly two; the map
// never holds more than one marker per role.
type Role int

const (
	RoleTopic Role = iota
	RoleRevelation
)

type Marker struct {
	Name  string
	Point geom.Point
	Glyph rune
	Color lipgloss.Color
}

// Map owns at most one marker per role and the viewport framing both.
// The zero value is unusable; construct with New.
type Map struct {
	topic      *Marker
	revelation *Marker
	bbox       geom.BBox

	zoom    float64
	offsetX int
	offsetY int
}

func New() *Map {
	return &Map{zoom: 1.0}
}

// SetMarkers replaces both role markers and refits the viewport to the
// minimal padded region containing them. Prior markers are discarded;
// markers never accumulate across selections. Zoom and pan reset so the
// new selection is framed.
func (m *Map) SetMarkers(topic, revelation Marker) {
	m.topic = &topic
	m.revelation = &revelation
	m.bbox = geom.BoundsOf(topic.Point, revelation.Point).Pad(padFraction, padMinimum)
	m.zoom = 1.0
	m.offsetX = 0
	m.offsetY = 0
}

// Clear removes both markers.
func (m *Map) Clear() {
	m.topic = nil
	m.revelation = nil
	m.bbox = geom.BBox{}
}

// Markers returns the active markers, topic first. Nil roles are omitted.
func (m *Map) Markers() []Marker {
	var out []Marker
	if m.topic != nil {
		out = append(out, *m.topic)
	}
	if m.revelation != nil {
		out = append(out, *m.revelation)
	}
	return out
}

// Bounds returns the current padded viewport region.
func (m *Map) Bounds() geom.BBox {
	return m.bbox
}

func (m *Map) ZoomIn() {
	if m.zoom < 64 {
		m.zoom *= 1.2
	}
}

func (m *Map) ZoomOut() {
	if m.zoom > 0.05 {
		m.zoom /= 1.2
	}
}

func (m *Map) Pan(dx, dy int) {
	m.offsetX += dx
	m.offsetY += dy
}

// Render draws the canvas at the given cell size: a connecting line between
// the two points on the braille microgrid, then the role glyphs on top.
// With no markers set the canvas is blank.
func (m *Map) Render(w, h int) string {
	if w < 1 || h < 1 {
		return ""
	}

	br := newBrailleBuf(w, h)

	if m.topic != nil && m.revelation != nil {
		x0, y0, ok0 := m.screenXYMicro(m.topic.Point, w, h)
		x1, y1, ok1 := m.screenXYMicro(m.revelation.Point, w, h)
		if ok0 && ok1 {
			br.drawLine(x0, y0, x1, y1)
		}
	}

	rows := br.rows()

	// Marker glyphs replace whole cells, colored per role. Drawn last so
	// they sit above the line.
	overlays := make(map[[2]int]Marker)
	for _, mk := range m.Markers() {
		mx, my, ok := m.screenXYMicro(mk.Point, w, h)
		if !ok {
			continue
		}
		cx, cy := mx/2, my/4
		if cx >= 0 && cx < w && cy >= 0 && cy < h {
			overlays[[2]int{cx, cy}] = mk
		}
	}

	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			if mk, ok := overlays[[2]int{x, y}]; ok {
				sb.WriteString(lipgloss.NewStyle().Foreground(mk.Color).Render(string(mk.Glyph)))
				continue
			}
			sb.WriteRune(rows[y][x])
		}
		lines[y] = sb.String()
	}

	return strings.Join(lines, "\n")
}

// Legend returns one label line per marker: the popup content of each
// marker, name plus coordinates.
func (m *Map) Legend() []string {
	var out []string
	for _, mk := range m.Markers() {
		out = append(out, fmt.Sprintf("%c %s (%.4f, %.4f)", mk.Glyph, mk.Name, mk.Point.Lat, mk.Point.Lon))
	}
	return out
}

// screenXYMicro projects a point into the 2x4-per-cell microgrid, applying
// zoom about the viewport center and the pan offsets.
func (m *Map) screenXYMicro(p geom.Point, w, h int) (int, int, bool) {
	if !(m.bbox.MaxLon > m.bbox.MinLon && m.bbox.MaxLat > m.bbox.MinLat) {
		return 0, 0, false
	}
	nx := (p.Lon - m.bbox.MinLon) / (m.bbox.MaxLon - m.bbox.MinLon)
	ny := (p.Lat - m.bbox.MinLat) / (m.bbox.MaxLat - m.bbox.MinLat)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}
