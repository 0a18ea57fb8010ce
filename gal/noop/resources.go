package noop

import "github.com/binmian/levikno/gal"

func (b *Backend) CreateShader(src gal.ShaderSource) (gal.Shader, error) {
	if err := gal.ValidateShaderSource(src); err != nil {
		return gal.Shader{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	h, _, err := b.shaders.Create(false, func(s *nativeShader) { s.src = src })
	return h, err
}

func (b *Backend) DestroyShader(s gal.Shader) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shaders.Destroy(s)
}

func (b *Backend) CreatePipeline(info gal.PipelineCreateInfo) (gal.Pipeline, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.shaders.Get(info.Shader); !ok {
		return gal.Pipeline{}, gal.Err(gal.Failure, "noop: CreatePipeline references unknown shader")
	}
	h, _, err := b.pipelines.Create(false, func(p *nativePipeline) { p.info = info })
	return h, err
}

func (b *Backend) DestroyPipeline(p gal.Pipeline) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pipelines.Destroy(p)
}

func (b *Backend) CreateBuffer(info gal.BufferCreateInfo) (gal.Buffer, error) {
	if err := gal.ValidateBuffer(info); err != nil {
		return gal.Buffer{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	h, _, err := b.buffers.Create(false, func(buf *nativeBuffer) {
		buf.usage = info.Usage
		buf.layout = info.Layout
		buf.vertexData = append([]byte(nil), info.VertexData...)
		buf.indexData = append([]uint32(nil), info.IndexData...)
	})
	return h, err
}

func (b *Backend) DestroyBuffer(buf gal.Buffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buffers.Destroy(buf)
}

func (b *Backend) BufferUpdateData(bh gal.Buffer, data []byte, offset uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf, ok := b.buffers.Get(bh)
	if !ok {
		return gal.Err(gal.Failure, "noop: BufferUpdateData on unknown buffer")
	}
	if !buf.usage.IsDynamic() {
		return gal.Err(gal.Failure, "noop: buffer was not created with Dynamic/Resize usage")
	}
	end := offset + uint64(len(data))
	if end > uint64(len(buf.vertexData)) {
		grown := make([]byte, end)
		copy(grown, buf.vertexData)
		buf.vertexData = grown
	}
	copy(buf.vertexData[offset:end], data)
	return nil
}

func (b *Backend) BufferResize(bh gal.Buffer, size uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf, ok := b.buffers.Get(bh)
	if !ok {
		return gal.Err(gal.Failure, "noop: BufferResize on unknown buffer")
	}
	if !buf.usage.IsResizable() {
		return gal.Err(gal.Failure, "noop: buffer was not created with Resize usage")
	}
	grown := make([]byte, size)
	copy(grown, buf.vertexData)
	buf.vertexData = grown
	return nil
}

func (b *Backend) CreateUniformBuffer(info gal.UniformBufferCreateInfo) (gal.UniformBuffer, error) {
	if err := gal.ValidateUniformBuffer(info); err != nil {
		return gal.UniformBuffer{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	ring := info.MaxFramesInFlight
	if ring <= 0 {
		ring = b.maxFramesInFlight
	}
	if ring <= 0 {
		ring = 1
	}
	h, _, err := b.uniformBuffers.Create(false, func(u *nativeUniformBuffer) {
		u.usage = info.Usage
		u.ringSize = ring
		u.data = make([][]byte, ring)
		for i := range u.data {
			u.data[i] = make([]byte, info.Size)
		}
	})
	return h, err
}

func (b *Backend) DestroyUniformBuffer(u gal.UniformBuffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.uniformBuffers.Destroy(u)
}

func (b *Backend) UpdateUniformBufferData(wh gal.Window, uh gal.UniformBuffer, data []byte, size uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows.Get(wh)
	if !ok {
		return gal.Err(gal.Failure, "noop: UpdateUniformBufferData on unknown window")
	}
	u, ok := b.uniformBuffers.Get(uh)
	if !ok {
		return gal.Err(gal.Failure, "noop: UpdateUniformBufferData on unknown uniform buffer")
	}
	slot := w.frameIndex % u.ringSize
	if uint64(len(u.data[slot])) < size {
		u.data[slot] = make([]byte, size)
	}
	copy(u.data[slot], data[:size])
	u.lastWritten = slot
	return nil
}

func (b *Backend) CreateTexture(info gal.TextureCreateInfo) (gal.Texture, error) {
	if err := gal.ValidateTexture(info); err != nil {
		return gal.Texture{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	h, _, err := b.textures.Create(false, func(t *nativeTexture) {
		t.width, t.height = info.Width, info.Height
		t.channels = info.Channels
		t.pixels = append([]byte(nil), info.Pixels...)
		t.format = info.Format
		t.sampler = info.SamplerRef
	})
	return h, err
}

func (b *Backend) DestroyTexture(t gal.Texture) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.textures.Destroy(t)
}

func (b *Backend) CreateTextureSampler(info gal.SamplerCreateInfo) (gal.Sampler, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	h, _, err := b.samplers.Create(false, func(s *nativeSampler) { s.info = info })
	return h, err
}

func (b *Backend) DestroySampler(s gal.Sampler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samplers.Destroy(s)
}

func (b *Backend) CreateCubemap(info gal.CubemapCreateInfo) (gal.Cubemap, error) {
	if err := gal.ValidateCubemap(info); err != nil {
		return gal.Cubemap{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	h, _, err := b.cubemaps.Create(false, func(c *nativeCubemap) {
		c.format = info.Format
		for i, face := range info.Faces {
			c.faces[i] = nativeTexture{
				width: face.Width, height: face.Height, channels: face.Channels,
				pixels: append([]byte(nil), face.Pixels...), format: face.Format,
			}
		}
	})
	return h, err
}

func (b *Backend) DestroyCubemap(c gal.Cubemap) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cubemaps.Destroy(c)
}

func (b *Backend) FindSupportedDepthImageFormat(candidates []gal.DepthFormat) (gal.DepthFormat, bool) {
	return gal.FindSupportedDepthImageFormat(candidates, func(gal.DepthFormat) bool { return true })
}
