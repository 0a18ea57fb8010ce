package model

import "encoding/json"

// document is the root glTF 2.0 JSON object. Field names mirror the
// specification exactly so json tags stay a direct transcription; Levikno's
// own loader types (Primitive, Material, Skin, ...) are built from this by
// Load and never exposed to callers.
type document struct {
	Accessors   []gAccessor   `json:"accessors,omitempty"`
	Animations  []gAnimation  `json:"animations,omitempty"`
	Asset       gAsset        `json:"asset"`
	Buffers     []gBuffer     `json:"buffers,omitempty"`
	BufferViews []gBufferView `json:"bufferViews,omitempty"`
	Images      []gImage      `json:"images,omitempty"`
	Materials   []gMaterial   `json:"materials,omitempty"`
	Meshes      []gMesh       `json:"meshes,omitempty"`
	Nodes       []gNode       `json:"nodes,omitempty"`
	Samplers    []gSampler    `json:"samplers,omitempty"`
	Scene       *int          `json:"scene,omitempty"`
	Scenes      []gScene      `json:"scenes,omitempty"`
	Skins       []gSkin       `json:"skins,omitempty"`
	Textures    []gTexture    `json:"textures,omitempty"`
}

type gAsset struct {
	Version    string `json:"version"`
	MinVersion string `json:"minVersion,omitempty"`
}

// gAccessor.componentType values.
const (
	compByte          = 5120
	compUnsignedByte  = 5121
	compShort         = 5122
	compUnsignedShort = 5123
	compUnsignedInt   = 5125
	compFloat         = 5126
)

// gAccessor.type values.
const (
	typeScalar = "SCALAR"
	typeVec2   = "VEC2"
	typeVec3   = "VEC3"
	typeVec4   = "VEC4"
	typeMat4   = "MAT4"
)

type gAccessor struct {
	BufferView    *int      `json:"bufferView,omitempty"`
	ByteOffset    int       `json:"byteOffset,omitempty"`
	ComponentType int       `json:"componentType"`
	Normalized    bool      `json:"normalized,omitempty"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Max           []float32 `json:"max,omitempty"`
	Min           []float32 `json:"min,omitempty"`
}

type gBuffer struct {
	URI        string `json:"uri,omitempty"`
	ByteLength int    `json:"byteLength"`
}

// gBufferView.target values.
const (
	targetArrayBuffer        = 34962
	targetElementArrayBuffer = 34963
)

type gBufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset,omitempty"`
	ByteLength int `json:"byteLength"`
	ByteStride int `json:"byteStride,omitempty"`
	Target     int `json:"target,omitempty"`
}

type gImage struct {
	URI        string `json:"uri,omitempty"`
	MimeType   string `json:"mimeType,omitempty"`
	BufferView *int   `json:"bufferView,omitempty"`
}

type gTextureInfo struct {
	Index    int `json:"index"`
	TexCoord int `json:"texCoord,omitempty"`
}

type gNormalTextureInfo struct {
	gTextureInfo
	Scale float32 `json:"scale,omitempty"`
}

type gOcclusionTextureInfo struct {
	gTextureInfo
	Strength float32 `json:"strength,omitempty"`
}

type gPBRMetallicRoughness struct {
	BaseColorFactor          *[4]float32   `json:"baseColorFactor,omitempty"`
	BaseColorTexture         *gTextureInfo `json:"baseColorTexture,omitempty"`
	MetallicFactor           *float32      `json:"metallicFactor,omitempty"`
	RoughnessFactor          *float32      `json:"roughnessFactor,omitempty"`
	MetallicRoughnessTexture *gTextureInfo `json:"metallicRoughnessTexture,omitempty"`
}

// gMaterial.alphaMode values.
const (
	alphaOpaque = "OPAQUE"
	alphaMask   = "MASK"
	alphaBlend  = "BLEND"
)

type gMaterial struct {
	PBRMetallicRoughness *gPBRMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`
	NormalTexture        *gNormalTextureInfo    `json:"normalTexture,omitempty"`
	OcclusionTexture     *gOcclusionTextureInfo `json:"occlusionTexture,omitempty"`
	EmissiveTexture      *gTextureInfo          `json:"emissiveTexture,omitempty"`
	EmissiveFactor       *[3]float32            `json:"emissiveFactor,omitempty"`
	AlphaMode            string                 `json:"alphaMode,omitempty"`
	AlphaCutoff          *float32               `json:"alphaCutoff,omitempty"`
	DoubleSided          bool                   `json:"doubleSided,omitempty"`
	Name                 string                 `json:"name,omitempty"`
}

type gPrimitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    *int           `json:"indices,omitempty"`
	Material   *int           `json:"material,omitempty"`
	Mode       *int           `json:"mode,omitempty"`
}

type gMesh struct {
	Primitives []gPrimitive `json:"primitives"`
	Name       string       `json:"name,omitempty"`
}

type gNode struct {
	Children    []int        `json:"children,omitempty"`
	Skin        *int         `json:"skin,omitempty"`
	Matrix      *[16]float32 `json:"matrix,omitempty"`
	Mesh        *int         `json:"mesh,omitempty"`
	Rotation    *[4]float32  `json:"rotation,omitempty"`
	Scale       *[3]float32  `json:"scale,omitempty"`
	Translation *[3]float32  `json:"translation,omitempty"`
	Name        string       `json:"name,omitempty"`
}

// gSampler.*Filter / wrap* values.
const (
	filterNearest             = 9728
	filterLinear              = 9729
	filterNearestMipmapLinear = 9986
	filterLinearMipmapLinear  = 9987
	wrapClampToEdge           = 33071
	wrapMirroredRepeat        = 33648
	wrapRepeat                = 10497
)

type gSampler struct {
	MagFilter int `json:"magFilter,omitempty"`
	MinFilter int `json:"minFilter,omitempty"`
	WrapS     int `json:"wrapS,omitempty"`
	WrapT     int `json:"wrapT,omitempty"`
}

type gScene struct {
	Nodes []int `json:"nodes,omitempty"`
}

type gSkin struct {
	InverseBindMatrices *int   `json:"inverseBindMatrices,omitempty"`
	Joints              []int  `json:"joints"`
	Name                string `json:"name,omitempty"`
}

type gTexture struct {
	Sampler *int `json:"sampler,omitempty"`
	Source  *int `json:"source,omitempty"`
}

// animation.sampler.interpolation values.
const (
	interpLinear      = "LINEAR"
	interpStep        = "STEP"
	interpCubicSpline = "CUBICSPLINE"
)

// animation.channel.target.path values.
const (
	pathTranslation = "translation"
	pathRotation    = "rotation"
	pathScale       = "scale"
)

type gAChannel struct {
	Sampler int `json:"sampler"`
	Target  struct {
		Node *int   `json:"node,omitempty"`
		Path string `json:"path"`
	} `json:"target"`
}

type gASampler struct {
	Input         int    `json:"input"`
	Interpolation string `json:"interpolation,omitempty"`
	Output        int    `json:"output"`
}

type gAnimation struct {
	Channels []gAChannel `json:"channels"`
	Samplers []gASampler `json:"samplers"`
	Name     string      `json:"name,omitempty"`
}

// decodeDocument parses a glTF JSON document.
func decodeDocument(data []byte) (*document, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
