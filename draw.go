package agg

// DrawLine strokes a single segment from (x0, y0) to (x1, y1) in device
// space with butt caps.
func (c *Canvas) DrawLine(x0, y0, x1, y1, width float64, color RGBA, aa bool) error {
	var p Path
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)

	gs := DefaultGraphicsState()
	gs.DrawingMode = DrawStroke
	gs.LineWidth = width
	gs.LineCap = CapButt
	gs.AntiAliased = aa
	return c.DrawShape(&p, Identity(), nil, SolidPaint{Color: color}, gs)
}

// DrawPolygon draws the closed polygon through points in device space.
// It fills with fillColor when fill is set and then outlines it with
// outlineColor when outline is set.
func (c *Canvas) DrawPolygon(points []Point, outline bool, outlineWidth float64, outlineColor RGBA,
	fill bool, fillColor RGBA, aa bool) error {
	var p Path
	p.Polygon(points)

	gs := DefaultGraphicsState()
	gs.DrawingMode = DrawInvisible
	if fill {
		gs.DrawingMode |= DrawFill
	}
	if outline {
		gs.DrawingMode |= DrawStroke
	}
	gs.LineWidth = outlineWidth
	gs.AntiAliased = aa
	return c.DrawShape(&p, Identity(), SolidPaint{Color: fillColor}, SolidPaint{Color: outlineColor}, gs)
}
