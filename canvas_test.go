package agg

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

// newTestCanvas returns a canvas over a fresh tightly packed buffer.
func newTestCanvas(t *testing.T, w, h int, format PixelFormat, opts ...CanvasOption) (*Canvas, []byte) {
	t.Helper()
	bpp := format.BytesPerPixel()
	data := make([]byte, w*h*bpp)
	img, err := NewImage(data, w, h, w*bpp, format)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	c, err := NewCanvas(img, opts...)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	return c, data
}

func pixel(c *Canvas, x, y int) []byte {
	return c.img.buf.Pixel(x, y)
}

func fillState() GraphicsState {
	gs := DefaultGraphicsState()
	gs.DrawingMode = DrawFill
	return gs
}

func rectPath(x, y, w, h float64) *Path {
	p := NewPath()
	p.Rect(x, y, w, h)
	return p
}

func TestNewCanvasNilImage(t *testing.T) {
	if _, err := NewCanvas(nil); !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("NewCanvas(nil) error = %v, want ErrInvalidBuffer", err)
	}
}

func TestClearRoundTrip(t *testing.T) {
	tests := []struct {
		format PixelFormat
		want   []byte
	}{
		{FormatG8, []byte{92}},
		{FormatGA16, []byte{92, 255}},
		{FormatRGB24, []byte{51, 102, 153}},
		{FormatRGBA32, []byte{51, 102, 153, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			const w, h = 3, 2
			bpp := tt.format.BytesPerPixel()
			stride := w*bpp + 2
			data := bytes.Repeat([]byte{0xEE}, stride*h)
			img, err := NewImage(data, w, h, stride, tt.format)
			if err != nil {
				t.Fatal(err)
			}
			c, err := NewCanvas(img)
			if err != nil {
				t.Fatal(err)
			}
			c.Clear(0.2, 0.4, 0.6)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if got := pixel(c, x, y); !bytes.Equal(got, tt.want) {
						t.Errorf("pixel(%d,%d) = %v, want %v", x, y, got, tt.want)
					}
				}
				pad := data[y*stride+w*bpp : (y+1)*stride]
				if !bytes.Equal(pad, []byte{0xEE, 0xEE}) {
					t.Errorf("row %d padding = %v, want untouched", y, pad)
				}
			}
		})
	}
}

func TestClearRGBATransparent(t *testing.T) {
	c, data := newTestCanvas(t, 2, 2, FormatRGBA32)
	c.ClearRGBA(1, 0, 0, 0.5)
	for i := 0; i < len(data); i += 4 {
		if got := data[i : i+4]; !bytes.Equal(got, []byte{255, 0, 0, 128}) {
			t.Fatalf("pixel %d = %v, want [255 0 0 128]", i/4, got)
		}
	}
}

func TestFillRectangleExact(t *testing.T) {
	for _, format := range []PixelFormat{FormatRGB24, FormatRGBA32} {
		t.Run(format.String(), func(t *testing.T) {
			c, _ := newTestCanvas(t, 10, 10, format)
			c.Clear(1, 1, 1)
			if err := c.DrawShape(rectPath(2, 3, 4, 5), Identity(), Solid(1, 0, 0), nil, fillState()); err != nil {
				t.Fatal(err)
			}
			for y := 0; y < 10; y++ {
				for x := 0; x < 10; x++ {
					inside := x >= 2 && x < 6 && y >= 3 && y < 8
					want := []byte{255, 255, 255, 255}
					if inside {
						want = []byte{255, 0, 0, 255}
					}
					want = want[:format.BytesPerPixel()]
					if got := pixel(c, x, y); !bytes.Equal(got, want) {
						t.Errorf("pixel(%d,%d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestShapeOutsideLeavesBufferUnchanged(t *testing.T) {
	tests := []struct {
		name string
		path *Path
	}{
		{"right", rectPath(100, 2, 5, 5)},
		{"below", rectPath(2, 100, 5, 5)},
		{"left", rectPath(-50, 2, 20, 5)},
		{"above", rectPath(2, -50, 5, 20)},
		{"huge", rectPath(1e9, 1e9, 1e9, 1e9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, data := newTestCanvas(t, 16, 16, FormatRGBA32)
			c.ClearRGBA(0.1, 0.2, 0.3, 0.4)
			before := bytes.Clone(data)
			gs := DefaultGraphicsState()
			gs.LineWidth = 3
			if err := c.DrawShape(tt.path, Identity(), Solid(1, 0, 0), Solid(0, 1, 0), gs); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(data, before) {
				t.Error("buffer changed by a shape outside it")
			}
		})
	}
}

func TestShapeSampledAtPixelCentres(t *testing.T) {
	c, _ := newTestCanvas(t, 20, 8, FormatRGBA32)
	g, err := NewLinearGradient(0, 0, 20, 0, []ColorStop{
		Stop(0, 1, 0, 0, 1),
		Stop(1, 0, 0, 1, 1),
	}, SpreadPad)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.DrawShape(rectPath(0, 0, 20, 8), Identity(), g, nil, fillState()); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 20; x++ {
			r, gg, b, a := g.ColorAt(float64(x)+0.5, float64(y)+0.5).bytes()
			want := []byte{r, gg, b, a}
			if got := pixel(c, x, y); !bytes.Equal(got, want) {
				t.Errorf("pixel(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestTransformedFill(t *testing.T) {
	c, _ := newTestCanvas(t, 20, 20, FormatG8)
	xf := Identity()
	xf.Scale(2, 2)
	xf.Translate(4, 6)
	if err := c.DrawShape(rectPath(0, 0, 3, 2), xf, Solid(1, 1, 1), nil, fillState()); err != nil {
		t.Fatal(err)
	}
	// The 3×2 rectangle maps to [4,10) × [6,10).
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			want := byte(0)
			if x >= 4 && x < 10 && y >= 6 && y < 10 {
				want = 255
			}
			if got := pixel(c, x, y)[0]; got != want {
				t.Errorf("pixel(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

// star returns a five-pointed star drawn in one stroke, so that the
// inner pentagon has winding number 2.
func star(cx, cy, r float64) *Path {
	pts := make([]Point, 0, 5)
	for _, k := range []int{0, 2, 4, 1, 3} {
		a := -math.Pi/2 + float64(k)*2*math.Pi/5
		pts = append(pts, Pt(cx+r*math.Cos(a), cy+r*math.Sin(a)))
	}
	p := NewPath()
	p.Polygon(pts)
	return p
}

func TestFillRules(t *testing.T) {
	tests := []struct {
		mode       DrawingMode
		wantCentre byte
	}{
		{DrawFill, 255},
		{DrawEofFill, 0},
	}
	for _, tt := range tests {
		c, _ := newTestCanvas(t, 100, 100, FormatG8)
		gs := DefaultGraphicsState()
		gs.DrawingMode = tt.mode
		if err := c.DrawShape(star(50, 50, 40), Identity(), Solid(1, 1, 1), nil, gs); err != nil {
			t.Fatal(err)
		}
		if got := pixel(c, 49, 49)[0]; got != tt.wantCentre {
			t.Errorf("mode %d: centre = %d, want %d", tt.mode, got, tt.wantCentre)
		}
		if got := pixel(c, 49, 18)[0]; got < 250 {
			t.Errorf("mode %d: tip = %d, want covered", tt.mode, got)
		}
		if got := pixel(c, 5, 5)[0]; got != 0 {
			t.Errorf("mode %d: corner = %d, want 0", tt.mode, got)
		}
	}
}

func TestSharedEdgeWithinOnePath(t *testing.T) {
	c, _ := newTestCanvas(t, 12, 4, FormatG8)
	p := NewPath()
	p.Rect(1, 0, 4.5, 4)
	p.Rect(5.5, 0, 4.5, 4)
	if err := c.DrawShape(p, Identity(), Solid(1, 1, 1), nil, fillState()); err != nil {
		t.Fatal(err)
	}
	for x := 1; x < 10; x++ {
		if got := pixel(c, x, 1)[0]; got != 255 {
			t.Errorf("pixel(%d,1) = %d, want 255", x, got)
		}
	}
}

func TestAliasedThreshold(t *testing.T) {
	c, _ := newTestCanvas(t, 8, 2, FormatG8)
	gs := fillState()
	gs.AntiAliased = false
	// Column 1 is a quarter covered, column 5 three quarters.
	if err := c.DrawShape(rectPath(1.75, 0, 4, 2), Identity(), Solid(1, 1, 1), nil, gs); err != nil {
		t.Fatal(err)
	}
	want := []byte{0, 0, 255, 255, 255, 255, 0, 0}
	for x, w := range want {
		if got := pixel(c, x, 0)[0]; got != w {
			t.Errorf("pixel(%d,0) = %d, want %d", x, got, w)
		}
	}
}

func TestMasterAlpha(t *testing.T) {
	c, _ := newTestCanvas(t, 4, 4, FormatRGB24)
	c.Clear(1, 1, 1)
	gs := fillState()
	gs.MasterAlpha = 0.5
	if err := c.DrawShape(rectPath(0, 0, 4, 4), Identity(), Solid(1, 0, 0), nil, gs); err != nil {
		t.Fatal(err)
	}
	if got, want := pixel(c, 1, 1), []byte{255, 127, 127}; !bytes.Equal(got, want) {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestBlendModes(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want []byte
	}{
		{BlendAlpha, []byte{255, 0, 0, 255}},
		{BlendSrcOver, []byte{255, 0, 0, 255}},
		{BlendSrc, []byte{255, 0, 0, 255}},
		{BlendDst, []byte{0, 0, 255, 255}},
		{BlendDstOver, []byte{0, 0, 255, 255}},
		{BlendClear, []byte{0, 0, 0, 0}},
		{BlendXor, []byte{0, 0, 0, 0}},
		{BlendAdd, []byte{255, 0, 255, 255}},
		{BlendScreen, []byte{255, 0, 255, 255}},
		{BlendMultiply, []byte{0, 0, 0, 255}},
		{BlendLighten, []byte{255, 0, 255, 255}},
		{BlendDarken, []byte{0, 0, 0, 255}},
		{BlendDifference, []byte{255, 0, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			c, _ := newTestCanvas(t, 4, 4, FormatRGBA32)
			c.Clear(0, 0, 1)
			gs := fillState()
			gs.BlendMode = tt.mode
			if err := c.DrawShape(rectPath(0, 0, 4, 4), Identity(), Solid(1, 0, 0), nil, gs); err != nil {
				t.Fatal(err)
			}
			if got := pixel(c, 2, 2); !bytes.Equal(got, tt.want) {
				t.Errorf("pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlendSrcKeepsEdgeCoverage(t *testing.T) {
	c, _ := newTestCanvas(t, 4, 1, FormatG8)
	c.Clear(1, 1, 1)
	gs := fillState()
	gs.BlendMode = BlendSrc
	// Half of column 1 is covered with black.
	if err := c.DrawShape(rectPath(1.5, 0, 2.5, 1), Identity(), Solid(0, 0, 0), nil, gs); err != nil {
		t.Fatal(err)
	}
	if got := pixel(c, 0, 0)[0]; got != 255 {
		t.Errorf("uncovered pixel = %d, want 255", got)
	}
	if got := pixel(c, 1, 0)[0]; got < 120 || got > 135 {
		t.Errorf("edge pixel = %d, want about 127", got)
	}
	if got := pixel(c, 2, 0)[0]; got != 0 {
		t.Errorf("covered pixel = %d, want 0", got)
	}
}

func TestGrayDestinationReceivesLuminance(t *testing.T) {
	c, _ := newTestCanvas(t, 2, 2, FormatGA16)
	if err := c.DrawShape(rectPath(0, 0, 2, 2), Identity(), Solid(0, 1, 0), nil, fillState()); err != nil {
		t.Fatal(err)
	}
	if got, want := pixel(c, 0, 0), []byte{149, 255}; !bytes.Equal(got, want) {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestClipBox(t *testing.T) {
	c, _ := newTestCanvas(t, 10, 4, FormatG8)
	gs := fillState()
	gs.ClipBox = Rect{X0: 2, Y0: 1, X1: 5, Y1: 3}
	if err := c.DrawShape(rectPath(0, 0, 10, 4), Identity(), Solid(1, 1, 1), nil, gs); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			want := byte(0)
			if x >= 2 && x < 5 && y >= 1 && y < 3 {
				want = 255
			}
			if got := pixel(c, x, y)[0]; got != want {
				t.Errorf("pixel(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}

	gs.ClipBox = Rect{X0: 20, Y0: 20, X1: 30, Y1: 30}
	c.Clear(0, 0, 0)
	if err := c.DrawShape(rectPath(0, 0, 10, 4), Identity(), Solid(1, 1, 1), nil, gs); err != nil {
		t.Fatal(err)
	}
	if got := pixel(c, 3, 2)[0]; got != 0 {
		t.Errorf("clip box outside the canvas drew %d", got)
	}
}

func TestStencil(t *testing.T) {
	const w, h = 8, 4
	mask := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch {
			case x < 4:
				mask[y*w+x] = 255
			case x < 6:
				mask[y*w+x] = 128
			}
		}
	}
	stencil, err := NewImage(mask, w, h, w, FormatG8)
	if err != nil {
		t.Fatal(err)
	}
	c, _ := newTestCanvas(t, w, h, FormatG8)
	gs := fillState()
	gs.Stencil = stencil
	if err := c.DrawShape(rectPath(0, 0, w, h), Identity(), Solid(1, 1, 1), nil, gs); err != nil {
		t.Fatal(err)
	}
	want := []byte{255, 255, 255, 255, 128, 128, 0, 0}
	for x, v := range want {
		if got := pixel(c, x, 2)[0]; got != v {
			t.Errorf("pixel(%d,2) = %d, want %d", x, got, v)
		}
	}
}

func TestStencilGrayAlpha(t *testing.T) {
	mask := []byte{255, 255, 255, 0, 255, 128}
	stencil, err := NewImage(mask, 3, 1, 6, FormatGA16)
	if err != nil {
		t.Fatal(err)
	}
	c, _ := newTestCanvas(t, 3, 1, FormatG8)
	gs := fillState()
	gs.Stencil = stencil
	if err := c.DrawShape(rectPath(0, 0, 3, 1), Identity(), Solid(1, 1, 1), nil, gs); err != nil {
		t.Fatal(err)
	}
	want := []byte{255, 0, 128}
	for x, v := range want {
		if got := pixel(c, x, 0)[0]; got != v {
			t.Errorf("pixel(%d,0) = %d, want %d", x, got, v)
		}
	}
}

func TestStencilSizeMismatch(t *testing.T) {
	small, err := NewImage(bytes.Repeat([]byte{255}, 4), 2, 2, 2, FormatG8)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("strict", func(t *testing.T) {
		c, _ := newTestCanvas(t, 4, 4, FormatG8, WithStrict(true))
		gs := fillState()
		gs.Stencil = small
		err := c.DrawShape(rectPath(0, 0, 4, 4), Identity(), Solid(1, 1, 1), nil, gs)
		if !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("error = %v, want ErrDimensionMismatch", err)
		}
	})

	t.Run("lenient", func(t *testing.T) {
		c, _ := newTestCanvas(t, 4, 4, FormatG8)
		gs := fillState()
		gs.Stencil = small
		if err := c.DrawShape(rectPath(0, 0, 4, 4), Identity(), Solid(1, 1, 1), nil, gs); err != nil {
			t.Fatal(err)
		}
		if got := pixel(c, 1, 1)[0]; got != 255 {
			t.Errorf("inside stencil = %d, want 255", got)
		}
		if got := pixel(c, 3, 3)[0]; got != 0 {
			t.Errorf("outside stencil = %d, want 0", got)
		}
	})
}

func TestStencilFormat(t *testing.T) {
	rgb, err := NewImage(make([]byte, 12), 2, 2, 6, FormatRGB24)
	if err != nil {
		t.Fatal(err)
	}
	c, _ := newTestCanvas(t, 2, 2, FormatG8)
	gs := fillState()
	gs.Stencil = rgb
	err = c.DrawShape(rectPath(0, 0, 2, 2), Identity(), Solid(1, 1, 1), nil, gs)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestStrokeRectangle(t *testing.T) {
	c, _ := newTestCanvas(t, 12, 12, FormatG8)
	gs := DefaultGraphicsState()
	gs.DrawingMode = DrawStroke
	gs.LineWidth = 2
	if err := c.DrawShape(rectPath(3, 3, 6, 6), Identity(), nil, Solid(1, 1, 1), gs); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, y int
		want byte
	}{
		{2, 2, 255}, // miter corner
		{3, 6, 255}, // left edge
		{6, 6, 0},   // interior
		{1, 6, 0},   // outside
		{9, 6, 255}, // right edge
		{10, 6, 0},
	}
	for _, tt := range tests {
		if got := pixel(c, tt.x, tt.y)[0]; got != tt.want {
			t.Errorf("pixel(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestStrokeWidthScalesWithTransform(t *testing.T) {
	c, _ := newTestCanvas(t, 20, 20, FormatG8)
	p := NewPath()
	p.MoveTo(1, 5)
	p.LineTo(9, 5)
	gs := DefaultGraphicsState()
	gs.DrawingMode = DrawStroke
	gs.LineCap = CapButt
	gs.LineWidth = 1
	if err := c.DrawShape(p, NewScale(2, 2), nil, Solid(1, 1, 1), gs); err != nil {
		t.Fatal(err)
	}
	// A unit pen scaled by 2 covers rows 9 and 10.
	for y, want := range map[int]byte{8: 0, 9: 255, 10: 255, 11: 0} {
		if got := pixel(c, 10, y)[0]; got != want {
			t.Errorf("pixel(10,%d) = %d, want %d", y, got, want)
		}
	}
}

func TestDashes(t *testing.T) {
	c, _ := newTestCanvas(t, 24, 10, FormatG8)
	p := NewPath()
	p.MoveTo(0, 5)
	p.LineTo(20, 5)
	gs := DefaultGraphicsState()
	gs.DrawingMode = DrawStroke
	gs.LineCap = CapButt
	gs.LineWidth = 2
	gs.Dashes = []float64{5, 5}
	if err := c.DrawShape(p, Identity(), nil, Solid(1, 1, 1), gs); err != nil {
		t.Fatal(err)
	}
	for x, want := range map[int]byte{2: 255, 7: 0, 12: 255, 17: 0} {
		if got := pixel(c, x, 5)[0]; got != want {
			t.Errorf("pixel(%d,5) = %d, want %d", x, got, want)
		}
	}
}

func TestFillThenStroke(t *testing.T) {
	c, _ := newTestCanvas(t, 12, 12, FormatRGB24)
	gs := DefaultGraphicsState()
	gs.LineWidth = 2
	if err := c.DrawShape(rectPath(3, 3, 6, 6), Identity(), Solid(1, 0, 0), Solid(0, 0, 1), gs); err != nil {
		t.Fatal(err)
	}
	if got, want := pixel(c, 6, 6), []byte{255, 0, 0}; !bytes.Equal(got, want) {
		t.Errorf("interior = %v, want %v", got, want)
	}
	if got, want := pixel(c, 3, 6), []byte{0, 0, 255}; !bytes.Equal(got, want) {
		t.Errorf("outline = %v, want %v", got, want)
	}
}

func TestBoundingBoxGradient(t *testing.T) {
	c, _ := newTestCanvas(t, 30, 4, FormatRGB24)
	g := &LinearGradientPaint{
		X1: 0, Y1: 0, X2: 1, Y2: 0,
		Stops: []ColorStop{Stop(0, 1, 0, 0, 1), Stop(1, 0, 0, 1, 1)},
		Units: UnitsObjectBoundingBox,
	}
	if err := c.DrawShape(rectPath(10, 0, 10, 4), Identity(), g, nil, fillState()); err != nil {
		t.Fatal(err)
	}
	left, right := pixel(c, 10, 1), pixel(c, 19, 1)
	if left[0] <= left[2] {
		t.Errorf("left pixel %v, want mostly red", left)
	}
	if right[2] <= right[0] {
		t.Errorf("right pixel %v, want mostly blue", right)
	}
	if got := pixel(c, 5, 1); !bytes.Equal(got, []byte{0, 0, 0}) {
		t.Errorf("outside pixel = %v, want black", got)
	}
}

func TestDegenerateTransformDrawsNothing(t *testing.T) {
	c, data := newTestCanvas(t, 8, 8, FormatG8)
	if err := c.DrawShape(rectPath(0, 0, 8, 8), NewScale(0, 0), Solid(1, 1, 1), nil, fillState()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, make([]byte, len(data))) {
		t.Error("collapsed transform drew pixels")
	}

	g, _ := NewLinearGradient(0, 0, 1, 0, []ColorStop{Stop(0, 1, 1, 1, 1), Stop(1, 1, 1, 1, 1)}, SpreadPad)
	if err := c.DrawShape(rectPath(0, 0, 8, 8), NewScale(1, 0), g, nil, fillState()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, make([]byte, len(data))) {
		t.Error("singular gradient pass drew pixels")
	}
}

func TestTransformOverflowRejected(t *testing.T) {
	c, data := newTestCanvas(t, 16, 8, FormatG8)
	p := NewPath()
	p.Polygon([]Point{Pt(0, 2), Pt(1e-8, 2), Pt(1e-8, 6), Pt(-1e300, 4)})

	err := c.DrawShape(p, NewScale(1e9, 1), Solid(1, 1, 1), nil, fillState())
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("DrawShape() error = %v, want ErrInvalidGeometry", err)
	}
	if !bytes.Equal(data, make([]byte, len(data))) {
		t.Errorf("overflowing shape drew pixels: row 3 = %v", data[3*16:4*16])
	}

	gs := DefaultGraphicsState()
	gs.DrawingMode = DrawStroke
	gs.LineWidth = 1e300
	line := NewPath()
	line.MoveTo(2, 4)
	line.LineTo(10, 4)
	if err := c.DrawShape(line, NewScale(1e10, 1e10), nil, Solid(1, 1, 1), gs); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("overflowing stroke error = %v, want ErrInvalidGeometry", err)
	}
}

func TestInvisibleDrawsNothing(t *testing.T) {
	c, data := newTestCanvas(t, 4, 4, FormatG8)
	gs := DefaultGraphicsState()
	gs.DrawingMode = DrawInvisible
	if err := c.DrawShape(rectPath(0, 0, 4, 4), Identity(), nil, nil, gs); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, make([]byte, len(data))) {
		t.Error("invisible mode drew pixels")
	}
}

func TestDrawShapeErrors(t *testing.T) {
	bad := NewPath()
	bad.MoveTo(0, 0)
	bad.LineTo(math.NaN(), 1)

	wide := DefaultGraphicsState()
	wide.LineWidth = math.Inf(1)
	negative := DefaultGraphicsState()
	negative.LineWidth = -1
	badDash := DefaultGraphicsState()
	badDash.Dashes = []float64{1, -1}
	badAlpha := fillState()
	badAlpha.MasterAlpha = math.NaN()
	badBlend := fillState()
	badBlend.BlendMode = blendModeCount

	tests := []struct {
		name   string
		path   *Path
		xf     Transform
		fill   Paint
		stroke Paint
		gs     GraphicsState
		want   error
	}{
		{"nil path", nil, Identity(), Solid(1, 1, 1), nil, fillState(), ErrInvalidGeometry},
		{"nan point", bad, Identity(), Solid(1, 1, 1), nil, fillState(), ErrInvalidGeometry},
		{"nan transform", rectPath(0, 0, 1, 1), Transform{A: math.NaN(), E: 1}, Solid(1, 1, 1), nil, fillState(), ErrInvalidGeometry},
		{"infinite width", rectPath(0, 0, 1, 1), Identity(), Solid(1, 1, 1), Solid(1, 1, 1), wide, ErrInvalidGeometry},
		{"negative width", rectPath(0, 0, 1, 1), Identity(), Solid(1, 1, 1), Solid(1, 1, 1), negative, ErrInvalidGeometry},
		{"negative dash", rectPath(0, 0, 1, 1), Identity(), Solid(1, 1, 1), Solid(1, 1, 1), badDash, ErrInvalidGeometry},
		{"nil fill", rectPath(0, 0, 1, 1), Identity(), nil, nil, fillState(), ErrInvalidPaint},
		{"nil stroke", rectPath(0, 0, 1, 1), Identity(), Solid(1, 1, 1), nil, DefaultGraphicsState(), ErrInvalidPaint},
		{"bad gradient", rectPath(0, 0, 1, 1), Identity(), &LinearGradientPaint{X2: 1}, nil, fillState(), ErrInvalidPaint},
		{"nan color", rectPath(0, 0, 1, 1), Identity(), Solid(math.NaN(), 0, 0), nil, fillState(), ErrInvalidPaint},
		{"nan alpha", rectPath(0, 0, 1, 1), Identity(), Solid(1, 1, 1), nil, badAlpha, ErrInvalidPaint},
		{"blend mode", rectPath(0, 0, 1, 1), Identity(), Solid(1, 1, 1), nil, badBlend, ErrInvalidPaint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, data := newTestCanvas(t, 4, 4, FormatG8)
			err := c.DrawShape(tt.path, tt.xf, tt.fill, tt.stroke, tt.gs)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if !bytes.Equal(data, make([]byte, len(data))) {
				t.Error("failed call drew pixels")
			}
		})
	}
}

func TestDrawLine(t *testing.T) {
	c, _ := newTestCanvas(t, 10, 10, FormatG8)
	if err := c.DrawLine(2, 5, 8, 5, 2, RGB(1, 1, 1), true); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := byte(0)
			if x >= 2 && x < 8 && (y == 4 || y == 5) {
				want = 255
			}
			if got := pixel(c, x, y)[0]; got != want {
				t.Errorf("pixel(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestDrawPolygon(t *testing.T) {
	square := []Point{Pt(2, 2), Pt(8, 2), Pt(8, 8), Pt(2, 8)}

	t.Run("fill", func(t *testing.T) {
		c, _ := newTestCanvas(t, 10, 10, FormatRGB24)
		if err := c.DrawPolygon(square, false, 0, RGBA{}, true, RGB(0, 1, 0), true); err != nil {
			t.Fatal(err)
		}
		if got := pixel(c, 5, 5); !bytes.Equal(got, []byte{0, 255, 0}) {
			t.Errorf("interior = %v, want green", got)
		}
		if got := pixel(c, 1, 1); !bytes.Equal(got, []byte{0, 0, 0}) {
			t.Errorf("exterior = %v, want black", got)
		}
	})

	t.Run("outline", func(t *testing.T) {
		c, _ := newTestCanvas(t, 10, 10, FormatRGB24)
		if err := c.DrawPolygon(square, true, 2, RGB(1, 0, 0), false, RGBA{}, false); err != nil {
			t.Fatal(err)
		}
		if got := pixel(c, 5, 5); !bytes.Equal(got, []byte{0, 0, 0}) {
			t.Errorf("interior = %v, want untouched", got)
		}
		if got := pixel(c, 2, 5); !bytes.Equal(got, []byte{255, 0, 0}) {
			t.Errorf("edge = %v, want red", got)
		}
	})

	t.Run("nothing", func(t *testing.T) {
		c, data := newTestCanvas(t, 10, 10, FormatRGB24)
		if err := c.DrawPolygon(square, false, 1, RGB(1, 0, 0), false, RGB(1, 0, 0), true); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, make([]byte, len(data))) {
			t.Error("polygon without fill or outline drew pixels")
		}
	})
}

func BenchmarkDrawShapeCircle(b *testing.B) {
	data := make([]byte, 512*512*4)
	img, _ := NewImage(data, 512, 512, 512*4, FormatRGBA32)
	c, _ := NewCanvas(img)
	p := NewPath()
	p.Circle(256, 256, 200)
	gs := DefaultGraphicsState()
	paint := SolidRGBA(0.2, 0.4, 0.8, 0.7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.DrawShape(p, Identity(), paint, paint, gs)
	}
}
