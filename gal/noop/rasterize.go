package noop

import (
	"encoding/binary"
	"math"

	"github.com/binmian/levikno/gal"
)

// vertexData is one decoded vertex under the fixed location convention
// package doc describes (location 0 position, 1 color, 2 uv).
type vertexData struct {
	pos          [3]float32
	color        [4]float32
	uv           [2]float32
	hasColor     bool
	hasUV        bool
}

func readFloats(data []byte, base uint32, n int) []float32 {
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		off := int(base) + i*4
		if off < 0 || off+4 > len(data) {
			continue
		}
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[off : off+4]))
	}
	return out
}

func decodeVertex(data []byte, layout gal.VertexInputBinding, index int) vertexData {
	strideByBinding := make(map[uint32]uint32, len(layout.Bindings))
	for _, b := range layout.Bindings {
		strideByBinding[b.Binding] = b.Stride
	}
	v := vertexData{color: [4]float32{1, 1, 1, 1}}
	for _, a := range layout.Attributes {
		stride := strideByBinding[a.Binding]
		base := uint32(index)*stride + a.Offset
		vals := readFloats(data, base, a.Format.Components())
		switch a.Location {
		case 0:
			copy(v.pos[:], vals)
		case 1:
			v.hasColor = true
			copy(v.color[:], vals)
		case 2:
			v.hasUV = true
			copy(v.uv[:], vals)
		}
	}
	return v
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sampleNearest performs nearest-neighbor lookup of a bound texture's
// pixels, the only filtering mode the reference backend needs to drive
// S2's textured-quad assertions.
func sampleNearest(tex *nativeTexture, u, v float32) [4]float32 {
	if tex == nil || tex.width == 0 || tex.height == 0 {
		return [4]float32{1, 1, 1, 1}
	}
	x := clampi(int(u*float32(tex.width)), 0, tex.width-1)
	y := clampi(int(v*float32(tex.height)), 0, tex.height-1)
	idx := (y*tex.width + x) * tex.channels
	var out [4]float32
	for c := 0; c < 4; c++ {
		if c < tex.channels && idx+c < len(tex.pixels) {
			out[c] = float32(tex.pixels[idx+c]) / 255
		} else if c == 3 {
			out[c] = 1
		}
	}
	return out
}

// target is the pixel surface a rasterize pass writes into: either a
// window's default color/depth or a framebuffer's attachment.
type target struct {
	width, height int
	color         *framebufferImage
	depth         []float32
	depthEnabled  bool
}

// rasterizeTriangle fills the triangle v0,v1,v2 into tgt using the fixed
// location convention (package doc): interpolated vertex color if present,
// else a sampled texture if a descriptor set with a bound image at binding
// 0 is active, else opaque white. Positions are treated as already in NDC
// (x,y in [-1,1]); z in [0,1] feeds the depth test when enabled.
func rasterizeTriangle(tgt target, tex *nativeTexture, v0, v1, v2 vertexData) {
	toScreen := func(p [3]float32) (float32, float32, float32) {
		sx := (p[0]*0.5 + 0.5) * float32(tgt.width)
		sy := (1 - (p[1]*0.5 + 0.5)) * float32(tgt.height)
		return sx, sy, p[2]
	}
	x0, y0, z0 := toScreen(v0.pos)
	x1, y1, z1 := toScreen(v1.pos)
	x2, y2, z2 := toScreen(v2.pos)

	minX := clampi(int(math.Floor(float64(minOf(x0, x1, x2)))), 0, tgt.width-1)
	maxX := clampi(int(math.Ceil(float64(maxOf(x0, x1, x2)))), 0, tgt.width-1)
	minY := clampi(int(math.Floor(float64(minOf(y0, y1, y2)))), 0, tgt.height-1)
	maxY := clampi(int(math.Ceil(float64(maxOf(y0, y1, y2)))), 0, tgt.height-1)

	area := edge(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}

	useColor := v0.hasColor || v1.hasColor || v2.hasColor
	useUV := tex != nil && (v0.hasUV || v1.hasUV || v2.hasUV)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float32(x)+0.5, float32(y)+0.5
			w0 := edge(x1, y1, x2, y2, px, py)
			w1 := edge(x2, y2, x0, y0, px, py)
			w2 := edge(x0, y0, x1, y1, px, py)
			if area > 0 {
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
			} else if w0 > 0 || w1 > 0 || w2 > 0 {
				continue
			}
			b0, b1, b2 := w0/area, w1/area, w2/area
			depth := b0*z0 + b1*z1 + b2*z2

			idx := y*tgt.width + x
			if tgt.depthEnabled {
				if depth >= tgt.depth[idx] {
					continue
				}
				tgt.depth[idx] = depth
			}

			var c [4]float32
			switch {
			case useUV:
				u := b0*v0.uv[0] + b1*v1.uv[0] + b2*v2.uv[0]
				v := b0*v0.uv[1] + b1*v1.uv[1] + b2*v2.uv[1]
				c = sampleNearest(tex, u, v)
			case useColor:
				for i := range c {
					c[i] = b0*v0.color[i] + b1*v1.color[i] + b2*v2.color[i]
				}
			default:
				c = [4]float32{1, 1, 1, 1}
			}
			tgt.color.set(x, y, c)
		}
	}
}

func minOf(vs ...float32) float32 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vs ...float32) float32 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
