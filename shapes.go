package canvasex

import "math"

// Line strokes a single segment from (x1, y1) to (x2, y2).
func (d *Drawer) Line(style Style, x1, y1, x2, y2 float64) *Drawer {
	if d.err != nil {
		return d
	}
	d.c.SetStrokeStyle(style)
	d.c.BeginPath()
	d.c.MoveTo(x1, y1)
	d.c.LineTo(x2, y2)
	d.fail("line", d.c.Stroke())
	return d
}

// Polyline strokes an open path through points. The last point is not
// joined back to the first. An empty slice draws nothing.
func (d *Drawer) Polyline(style Style, points []Point) *Drawer {
	if d.err != nil {
		return d
	}
	d.c.SetStrokeStyle(style)
	if len(points) == 0 {
		return d
	}
	d.tracePolygon(points, false)
	d.fail("polyline", d.c.Stroke())
	return d
}

// StrokeRect strokes the outline of a rectangle.
func (d *Drawer) StrokeRect(style Style, x, y, w, h float64) *Drawer {
	if d.err != nil {
		return d
	}
	d.c.SetStrokeStyle(style)
	d.fail("strokeRect", d.c.StrokeRect(x, y, w, h))
	return d
}

// StrokeEllipse strokes the ellipse inscribed in the rectangle (x, y, w, h).
func (d *Drawer) StrokeEllipse(style Style, x, y, w, h float64) *Drawer {
	if d.err != nil {
		return d
	}
	d.c.SetStrokeStyle(style)
	d.traceEllipse(x, y, w, h)
	d.fail("strokeEllipse", d.c.Stroke())
	return d
}

// StrokePie strokes a circular sector centered at (x, y). Angles are in
// degrees and sweep in the Canvas arc direction.
func (d *Drawer) StrokePie(style Style, x, y, radius, beginDeg, endDeg float64) *Drawer {
	if d.err != nil {
		return d
	}
	d.c.SetStrokeStyle(style)
	d.tracePie(x, y, radius, beginDeg, endDeg)
	d.fail("strokePie", d.c.Stroke())
	return d
}

// StrokePolygon strokes the closed path through points.
// An empty slice draws nothing.
func (d *Drawer) StrokePolygon(style Style, points []Point) *Drawer {
	if d.err != nil {
		return d
	}
	d.c.SetStrokeStyle(style)
	if len(points) == 0 {
		return d
	}
	d.tracePolygon(points, true)
	d.fail("strokePolygon", d.c.Stroke())
	return d
}

// FillRect fills a rectangle.
func (d *Drawer) FillRect(style Style, x, y, w, h float64) *Drawer {
	if d.err != nil {
		return d
	}
	d.c.SetFillStyle(style)
	d.fail("fillRect", d.c.FillRect(x, y, w, h))
	return d
}

// FillEllipse fills the ellipse inscribed in the rectangle (x, y, w, h).
func (d *Drawer) FillEllipse(style Style, x, y, w, h float64) *Drawer {
	if d.err != nil {
		return d
	}
	d.c.SetFillStyle(style)
	d.traceEllipse(x, y, w, h)
	d.fail("fillEllipse", d.c.Fill())
	return d
}

// FillPie fills a circular sector and strokes its boundary with the same
// style.
func (d *Drawer) FillPie(style Style, x, y, radius, beginDeg, endDeg float64) *Drawer {
	if d.err != nil {
		return d
	}
	d.c.SetFillStyle(style)
	d.c.SetStrokeStyle(style)
	d.tracePie(x, y, radius, beginDeg, endDeg)
	d.fail("fillPie", d.c.Stroke())
	if d.err != nil {
		return d
	}
	d.fail("fillPie", d.c.Fill())
	return d
}

// FillPolygon fills the closed path through points.
// An empty slice draws nothing.
func (d *Drawer) FillPolygon(style Style, points []Point) *Drawer {
	if d.err != nil {
		return d
	}
	d.c.SetFillStyle(style)
	if len(points) == 0 {
		return d
	}
	d.tracePolygon(points, true)
	d.fail("fillPolygon", d.c.Fill())
	return d
}

// tracePolygon replaces the current path with one through points.
// points must not be empty.
func (d *Drawer) tracePolygon(points []Point, closed bool) {
	d.c.BeginPath()
	d.c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		d.c.LineTo(p.X, p.Y)
	}
	if closed {
		d.c.ClosePath()
	}
}

func (d *Drawer) traceEllipse(x, y, w, h float64) {
	d.c.BeginPath()
	d.c.Ellipse(x+w/2, y+h/2, w/2, h/2, 0, 2*math.Pi)
	d.c.ClosePath()
}

func (d *Drawer) tracePie(x, y, radius, beginDeg, endDeg float64) {
	d.c.BeginPath()
	d.c.MoveTo(x, y)
	d.c.Arc(x, y, radius, Radians(beginDeg), Radians(endDeg))
	d.c.ClosePath()
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
