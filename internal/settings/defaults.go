package settings

const (
	defaultLogLevel                            = 3
	defaultDrawDistance                        = 3000.0
	defaultWireframe                           = true
	defaultInflateByConvexRadius               = true
	defaultDedupConvexVertices                 = true
	defaultDedupConvexVerticesThreshold        = 0.0001
	defaultDedupConvexVerticesThresholdCleanup = 0.001
	defaultDuplicatePlanarShapeVertices        = true
	defaultResetOnToggle                       = true
)

var (
	defaultDynamicColor = Color3{R: 0.0, G: 0.6, B: 1.0}
	defaultFixedColor   = Color3{R: 1.0, G: 0.5, B: 0.0}
)

// Default returns Options populated with the values shipped in the sample
// settings file.
func Default() Options {
	return Options{
		LogLevel:                            defaultLogLevel,
		DrawDistance:                        defaultDrawDistance,
		Wireframe:                           defaultWireframe,
		InflateByConvexRadius:               defaultInflateByConvexRadius,
		DedupConvexVertices:                 defaultDedupConvexVertices,
		DedupConvexVerticesThreshold:        defaultDedupConvexVerticesThreshold,
		DedupConvexVerticesThresholdCleanup: defaultDedupConvexVerticesThresholdCleanup,
		DuplicatePlanarShapeVertices:        defaultDuplicatePlanarShapeVertices,
		ResetOnToggle:                       defaultResetOnToggle,
		DynamicColor:                        defaultDynamicColor.WithAlpha(1),
		FixedColor:                          defaultFixedColor.WithAlpha(1),
	}
}
