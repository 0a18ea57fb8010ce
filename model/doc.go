// Package model implements Levikno's glTF 2.0 / GLB loader: it parses the
// JSON document (and, for GLB, the binary chunk indexed by buffer view),
// walks the scene graph, assembles one interleaved vertex buffer and
// optional index buffer per mesh primitive, and produces GAL-ready
// Buffer/Texture/Material handles through the active context.
//
// Loading is a two-pass process. The first pass (Decode/Unpack, Check)
// parses and validates the document structurally, mirroring the glTF spec's
// own required/optional field distinctions. The second pass (Load) walks
// accessors and buffer views to build CPU-side vertex/index data, decodes
// images, and hands everything to gal.Backend to obtain device resources.
package model
