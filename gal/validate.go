package gal

// Validation holds the backend-agnostic preconditions spec.md §4.4 requires
// every create* to check before touching the backend. gal/opengl calls these
// first so a validation failure never reaches driver code (and never logs a
// driver-specific error for what is actually a caller mistake); gal/vulkan
// keeps its own narrower inline checks and calls only ValidateCubemap.

// ValidateShaderSource checks that both stages have non-empty source
// regardless of which of the three loading forms is used.
func ValidateShaderSource(src ShaderSource) error {
	vertexEmpty := src.VertexSrc == "" && src.VertexFilePath == "" && src.VertexBinPath == ""
	fragEmpty := src.FragmentSrc == "" && src.FragmentFilePath == "" && src.FragmentBinPath == ""
	if vertexEmpty || fragEmpty {
		return Err(Failure, "shader requires both a vertex and a fragment source")
	}
	return nil
}

// ValidateBuffer checks createBuffer's preconditions.
func ValidateBuffer(info BufferCreateInfo) error {
	if info.Usage&(BufferUsageVertex|BufferUsageIndex) == 0 {
		return Err(Failure, "buffer usage must include vertex and/or index")
	}
	if len(info.Layout.Attributes) == 0 || len(info.Layout.Bindings) == 0 {
		return Err(Failure, "buffer requires non-empty vertex attribute and binding arrays")
	}
	for _, a := range info.Layout.Attributes {
		if _, ok := vertexAttrTable[a.Format]; !ok {
			return Err(Failure, "vertex attribute %d has no recognized format", a.Location)
		}
	}
	if info.VertexData == nil && !info.Usage.IsDynamic() {
		return Err(Failure, "buffer data may be nil only for dynamic or resize usage")
	}
	return nil
}

// ValidateUniformBuffer checks createUniformBuffer's preconditions.
func ValidateUniformBuffer(info UniformBufferCreateInfo) error {
	if info.Usage != UniformBufferUniform && info.Usage != UniformBufferStorage {
		return Err(Failure, "uniform buffer usage must be Uniform or Storage")
	}
	if info.Size == 0 {
		return Err(Failure, "uniform buffer size must be non-zero")
	}
	return nil
}

// ValidateFrameBuffer checks createFrameBuffer's preconditions.
func ValidateFrameBuffer(info FrameBufferCreateInfo) error {
	colorCount := 0
	seen := map[int]bool{}
	maxIndex := len(info.Attachments)
	if info.HasDepth {
		maxIndex++
	}
	for _, a := range info.Attachments {
		if seen[a.Index] {
			return Err(Failure, "duplicate attachment index %d", a.Index)
		}
		seen[a.Index] = true
		if a.Index < 0 || a.Index >= maxIndex {
			return Err(Failure, "attachment index %d out of range [0,%d)", a.Index, maxIndex)
		}
		if !a.IsDepth {
			colorCount++
		}
	}
	if colorCount == 0 {
		return Err(Failure, "framebuffer requires at least one color attachment")
	}
	if info.HasDepth && seen[info.DepthIndex] {
		return Err(Failure, "depth index %d collides with a color attachment", info.DepthIndex)
	}
	return nil
}

// ValidateCubemap checks createCubemap's preconditions, including the
// face-dimension equality spec.md Open Question (2) resolves as enforced.
func ValidateCubemap(info CubemapCreateInfo) error {
	w, h := info.Faces[0].Width, info.Faces[0].Height
	for i, f := range info.Faces {
		if len(f.Pixels) == 0 {
			return Err(Failure, "cubemap face %d has no pixel data", i)
		}
		if f.Width != w || f.Height != h {
			return Err(Failure, "cubemap face %d dimensions (%d,%d) differ from face 0 (%d,%d)", i, f.Width, f.Height, w, h)
		}
	}
	return nil
}

// ValidateTexture checks createTexture/createTextureSampler's preconditions.
func ValidateTexture(info TextureCreateInfo) error {
	if info.Width <= 0 || info.Height <= 0 {
		return Err(Failure, "texture dimensions must be positive, got (%d,%d)", info.Width, info.Height)
	}
	if info.Channels < 1 || info.Channels > 4 {
		return Err(Failure, "texture channel count must be in [1,4], got %d", info.Channels)
	}
	return nil
}

// ValidateDescriptorLayout checks createDescriptorLayout's preconditions.
func ValidateDescriptorLayout(info DescriptorLayoutCreateInfo) error {
	if len(info.Bindings) == 0 {
		return Err(Failure, "descriptor layout requires a non-empty binding list")
	}
	return nil
}
