package model

import (
	"encoding/binary"
	"errors"
	"io"
)

// GLB container constants (Khronos glTF 2.0 §Binary glTF layout).
const (
	glbMagic    = 0x46546c67
	glbVersion  = 2
	chunkJSON   = 0x4e4f534a
	chunkBIN    = 0x004e4942
	glbHeaderSz = 12
	chunkHdrSz  = 8
)

// isGLB reports whether the first 12 bytes of r form a valid GLB header.
// It assumes r is positioned at the start of the blob.
func isGLB(r io.Reader) (magic, version, length uint32, ok bool) {
	var h [3]uint32
	if err := binary.Read(r, binary.LittleEndian, h[:]); err != nil {
		return 0, 0, 0, false
	}
	if h[0] != glbMagic || h[1] != glbVersion {
		return h[0], h[1], h[2], false
	}
	return h[0], h[1], h[2], true
}

// unpackGLB reads a binary glTF container from r, returning the decoded JSON
// document and the raw BIN chunk payload (nil if absent, which is legal:
// the BIN chunk is optional per the Khronos spec).
func unpackGLB(r io.Reader) (*document, []byte, error) {
	_, _, _, ok := isGLB(r)
	if !ok {
		return nil, nil, errors.New("model: not a GLB blob")
	}

	var jc [2]uint32
	if err := binary.Read(r, binary.LittleEndian, jc[:]); err != nil {
		return nil, nil, err
	}
	if jc[1] != chunkJSON || jc[0] == 0 {
		return nil, nil, errors.New("model: GLB JSON chunk missing or empty")
	}
	jsonBytes := make([]byte, jc[0])
	if _, err := io.ReadFull(r, jsonBytes); err != nil {
		return nil, nil, err
	}
	doc, err := decodeDocument(jsonBytes)
	if err != nil {
		return nil, nil, err
	}

	var bc [2]uint32
	err = binary.Read(r, binary.LittleEndian, bc[:])
	switch {
	case err == io.EOF, err == io.ErrUnexpectedEOF:
		// No BIN chunk: every buffer must carry its own URI.
		return doc, nil, nil
	case err != nil:
		return nil, nil, err
	case bc[1] != chunkBIN:
		return nil, nil, errors.New("model: expected GLB BIN chunk")
	}
	bin := make([]byte, bc[0])
	if _, err := io.ReadFull(r, bin); err != nil {
		return nil, nil, err
	}
	return doc, bin, nil
}
