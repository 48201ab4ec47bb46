package settings

// Vector3 is a three-component float vector read from <name>X/Y/Z keys.
type Vector3 struct {
	X float32 `json:"x" toml:"x" yaml:"x"`
	Y float32 `json:"y" toml:"y" yaml:"y"`
	Z float32 `json:"z" toml:"z" yaml:"z"`
}

// Color3 is an RGB color read from <name>R/G/B keys.
type Color3 struct {
	R float32 `json:"r" toml:"r" yaml:"r"`
	G float32 `json:"g" toml:"g" yaml:"g"`
	B float32 `json:"b" toml:"b" yaml:"b"`
}

// Color4 is an RGBA color as consumed by the renderer.
type Color4 struct {
	R float32 `json:"r" toml:"r" yaml:"r"`
	G float32 `json:"g" toml:"g" yaml:"g"`
	B float32 `json:"b" toml:"b" yaml:"b"`
	A float32 `json:"a" toml:"a" yaml:"a"`
}

// WithAlpha extends the color with the given alpha channel.
func (c Color3) WithAlpha(a float32) Color4 {
	return Color4{R: c.R, G: c.G, B: c.B, A: a}
}

// RGB drops the alpha channel.
func (c Color4) RGB() Color3 {
	return Color3{R: c.R, G: c.G, B: c.B}
}

// Options holds every tunable the plugin reads at startup.
//
// Options is a plain value: Load builds a fresh one per pass and callers pass
// it to whatever needs it. Use a Holder when the value must be swapped while
// readers are running.
type Options struct {
	LogLevel     int     `json:"logLevel" toml:"logLevel" yaml:"logLevel"`
	DrawDistance float32 `json:"drawDistance" toml:"drawDistance" yaml:"drawDistance"`
	Wireframe    bool    `json:"wireframe" toml:"wireframe" yaml:"wireframe"`

	InflateByConvexRadius               bool    `json:"inflateByConvexRadius" toml:"inflateByConvexRadius" yaml:"inflateByConvexRadius"`
	DedupConvexVertices                 bool    `json:"dedupConvexVertices" toml:"dedupConvexVertices" yaml:"dedupConvexVertices"`
	DedupConvexVerticesThreshold        float32 `json:"dedupConvexVerticesThreshold" toml:"dedupConvexVerticesThreshold" yaml:"dedupConvexVerticesThreshold"`
	DedupConvexVerticesThresholdCleanup float32 `json:"dedupConvexVerticesThresholdCleanup" toml:"dedupConvexVerticesThresholdCleanup" yaml:"dedupConvexVerticesThresholdCleanup"`
	DuplicatePlanarShapeVertices        bool    `json:"duplicatePlanarShapeVertices" toml:"duplicatePlanarShapeVertices" yaml:"duplicatePlanarShapeVertices"`
	ResetOnToggle                       bool    `json:"resetOnToggle" toml:"resetOnToggle" yaml:"resetOnToggle"`

	// DynamicColor tints shapes of moving bodies, FixedColor static ones.
	// Alpha is always 1 after a load.
	DynamicColor Color4 `json:"dynamicColor" toml:"dynamicColor" yaml:"dynamicColor"`
	FixedColor   Color4 `json:"fixedColor" toml:"fixedColor" yaml:"fixedColor"`
}
