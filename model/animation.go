package model

import "github.com/binmian/levikno/vmath"

// Interpolation selects how a channel's keyframes blend between samples.
// Spherical interpolation of rotations at playback time is out of scope
// here (spec.md §4.7); CUBICSPLINE keyframes decode as STEP, since Hermite
// tangent reconstruction is a playback-time concern this loader does not
// implement.
type Interpolation int

const (
	InterpStep Interpolation = iota
	InterpLinear
)

// TargetPath selects which TRS component a channel drives.
type TargetPath int

const (
	PathTranslation TargetPath = iota
	PathRotation
	PathScale
)

// Channel is one animation channel: keyframe times, per-keyframe output
// values (Vec3 for translation/scale, Vec4 for rotation quaternions), the
// target node, and the TRS component it drives.
type Channel struct {
	Node          int
	Path          TargetPath
	Interpolation Interpolation
	Times         []float32
	ValuesVec3    []vmath.Vec3
	ValuesVec4    []vmath.Vec4
}

// Animation is a named set of channels plus the playback window derived
// from their keyframe times.
type Animation struct {
	Name       string
	Channels   []Channel
	Start, End float32
}

func interpolationFromString(s string) Interpolation {
	if s == interpLinear {
		return InterpLinear
	}
	return InterpStep
}

func targetPathFromString(s string) (TargetPath, bool) {
	switch s {
	case pathTranslation:
		return PathTranslation, true
	case pathRotation:
		return PathRotation, true
	case pathScale:
		return PathScale, true
	default:
		return 0, false
	}
}

// buildAnimation constructs one Animation's channels, skipping any channel
// targeting an unsupported path (weights) or lacking a target node.
func (doc *document) buildAnimation(buffers []resolvedBuffer, ga *gAnimation) Animation {
	anim := Animation{Name: ga.Name}
	var minT, maxT float32
	first := true

	for _, gc := range ga.Channels {
		if gc.Target.Node == nil {
			continue
		}
		path, ok := targetPathFromString(gc.Target.Path)
		if !ok {
			continue
		}
		gs := &ga.Samplers[gc.Sampler]
		times := doc.readAccessorFloats(buffers, gs.Input)
		outFlat := doc.readAccessorFloats(buffers, gs.Output)
		// CUBICSPLINE outputs hold (in-tangent, value, out-tangent) per
		// keyframe; only the value is kept.
		vi, vstep := 0, 1
		if gs.Interpolation == interpCubicSpline {
			vi, vstep = 1, 3
		}

		ch := Channel{
			Node:          *gc.Target.Node,
			Path:          path,
			Interpolation: interpolationFromString(gs.Interpolation),
			Times:         times,
		}
		switch path {
		case PathRotation:
			ch.ValuesVec4 = make([]vmath.Vec4, len(times))
			for i := range ch.ValuesVec4 {
				ch.ValuesVec4[i] = vec4At(outFlat, i*vstep+vi, 4)
			}
		default:
			ch.ValuesVec3 = make([]vmath.Vec3, len(times))
			for i := range ch.ValuesVec3 {
				ch.ValuesVec3[i] = vec3At(outFlat, i*vstep+vi)
			}
		}
		anim.Channels = append(anim.Channels, ch)

		for _, t := range times {
			if first {
				minT, maxT = t, t
				first = false
				continue
			}
			if t < minT {
				minT = t
			}
			if t > maxT {
				maxT = t
			}
		}
	}
	anim.Start, anim.End = minT, maxT
	return anim
}
