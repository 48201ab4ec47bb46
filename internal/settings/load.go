package settings

import (
	"log/slog"

	"github.com/google/uuid"

	"collviz/internal/logging"
)

// Keys in load order. Colors expand to their R, G and B keys.
const (
	KeyLogLevel                            = "logLevel"
	KeyDrawDistance                        = "drawDistance"
	KeyWireframe                           = "wireframe"
	KeyInflateByConvexRadius               = "inflateByConvexRadius"
	KeyDedupConvexVertices                 = "dedupConvexVertices"
	KeyDedupConvexVerticesThreshold        = "dedupConvexVerticesThreshold"
	KeyDedupConvexVerticesThresholdCleanup = "dedupConvexVerticesThresholdCleanup"
	KeyDuplicatePlanarShapeVertices        = "duplicatePlanarShapeVertices"
	KeyResetOnToggle                       = "resetOnToggle"
	KeyDynamicColor                        = "dynamicColor"
	KeyFixedColor                          = "fixedColor"
)

// Keys returns every raw key Load reads, in the order it reads them.
func Keys() []string {
	return []string{
		KeyLogLevel,
		KeyDrawDistance,
		KeyWireframe,
		KeyInflateByConvexRadius,
		KeyDedupConvexVertices,
		KeyDedupConvexVerticesThreshold,
		KeyDedupConvexVerticesThresholdCleanup,
		KeyDuplicatePlanarShapeVertices,
		KeyResetOnToggle,
		KeyDynamicColor + "R", KeyDynamicColor + "G", KeyDynamicColor + "B",
		KeyFixedColor + "R", KeyFixedColor + "G", KeyFixedColor + "B",
	}
}

// Load reads the complete option set from r in a fixed order. It stops at
// the first option that fails and returns that option's *Error with a zero
// Options; options after the failing one are never read.
func Load(r *Reader) (Options, error) {
	logger := r.logger.With(logging.String(logging.FieldLoadID, uuid.NewString()))
	r = r.WithLogger(logger)

	fail := func(err error) (Options, error) {
		logger.Warn("settings load failed",
			logging.String(logging.FieldEventType, "settings.load_failed"),
			logging.String(logging.FieldKind, KindOf(err).String()),
			logging.Error(err),
		)
		return Options{}, err
	}

	var (
		opts Options
		err  error
	)
	if opts.LogLevel, err = r.Int(KeyLogLevel); err != nil {
		return fail(err)
	}
	if opts.DrawDistance, err = r.Float(KeyDrawDistance); err != nil {
		return fail(err)
	}
	if opts.Wireframe, err = r.Bool(KeyWireframe); err != nil {
		return fail(err)
	}
	if opts.InflateByConvexRadius, err = r.Bool(KeyInflateByConvexRadius); err != nil {
		return fail(err)
	}
	if opts.DedupConvexVertices, err = r.Bool(KeyDedupConvexVertices); err != nil {
		return fail(err)
	}
	if opts.DedupConvexVerticesThreshold, err = r.Float(KeyDedupConvexVerticesThreshold); err != nil {
		return fail(err)
	}
	if opts.DedupConvexVerticesThresholdCleanup, err = r.Float(KeyDedupConvexVerticesThresholdCleanup); err != nil {
		return fail(err)
	}
	if opts.DuplicatePlanarShapeVertices, err = r.Bool(KeyDuplicatePlanarShapeVertices); err != nil {
		return fail(err)
	}
	if opts.ResetOnToggle, err = r.Bool(KeyResetOnToggle); err != nil {
		return fail(err)
	}

	dynamicColor, err := r.Color3(KeyDynamicColor)
	if err != nil {
		return fail(err)
	}
	opts.DynamicColor = dynamicColor.WithAlpha(1)

	fixedColor, err := r.Color3(KeyFixedColor)
	if err != nil {
		return fail(err)
	}
	opts.FixedColor = fixedColor.WithAlpha(1)

	logger.Debug("settings loaded",
		logging.String(logging.FieldEventType, "settings.load_succeeded"),
		logging.Int("log_level", opts.LogLevel),
		logging.Float64("draw_distance", float64(opts.DrawDistance)),
	)
	return opts, nil
}

// LoadFile reads options from the settings file at path.
func LoadFile(path string, logger *slog.Logger) (Options, error) {
	return Load(NewReader(NewFile(path), logger))
}
