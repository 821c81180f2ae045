package svgcanvas

import "math"

func (c *Canvas) BeginPath() {
	c.path.Reset()
	c.current = false
}

func (c *Canvas) MoveTo(x, y float64) {
	c.cmd('M', x, y)
	c.current = true
}

// LineTo starts a subpath at (x, y) when there is no current point.
func (c *Canvas) LineTo(x, y float64) {
	if !c.current {
		c.MoveTo(x, y)
		return
	}
	c.cmd('L', x, y)
}

func (c *Canvas) ClosePath() {
	if !c.current {
		return
	}
	c.path.WriteByte('Z')
}

func (c *Canvas) Rect(x, y, w, h float64) {
	c.path.WriteString(c.rectData(x, y, w, h))
	c.current = true
}

func (c *Canvas) Arc(cx, cy, r, start, end float64) {
	c.Ellipse(cx, cy, r, r, start, end)
}

// Ellipse adds an arc sweeping clockwise on screen. Full turns are written
// as two half arcs because a single SVG arc cannot end where it starts.
func (c *Canvas) Ellipse(cx, cy, rx, ry, start, end float64) {
	const twoPi = 2 * math.Pi

	sweep := end - start
	if sweep >= twoPi {
		sweep = twoPi
	} else {
		sweep = math.Mod(sweep, twoPi)
		if sweep < 0 {
			sweep += twoPi
		}
	}

	x0, y0 := cx+rx*math.Cos(start), cy+ry*math.Sin(start)
	c.LineTo(x0, y0)
	if sweep == 0 || rx <= 0 || ry <= 0 {
		return
	}
	if sweep == twoPi {
		c.arcTo(rx, ry, false, cx+rx*math.Cos(start+math.Pi), cy+ry*math.Sin(start+math.Pi))
		c.arcTo(rx, ry, false, x0, y0)
		return
	}
	c.arcTo(rx, ry, sweep > math.Pi, cx+rx*math.Cos(start+sweep), cy+ry*math.Sin(start+sweep))
}

func (c *Canvas) arcTo(rx, ry float64, large bool, x, y float64) {
	flag := "0"
	if large {
		flag = "1"
	}
	c.path.WriteString("A" + c.num(rx) + " " + c.num(ry) + " 0 " + flag + " 1 " + c.num(x) + " " + c.num(y))
}

func (c *Canvas) cmd(op byte, x, y float64) {
	c.path.WriteByte(op)
	c.path.WriteString(c.num(x))
	c.path.WriteByte(' ')
	c.path.WriteString(c.num(y))
}

func (c *Canvas) pathData() string {
	return c.path.String()
}

func (c *Canvas) rectData(x, y, w, h float64) string {
	return "M" + c.num(x) + " " + c.num(y) +
		"H" + c.num(x+w) + "V" + c.num(y+h) + "H" + c.num(x) + "Z"
}
