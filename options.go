package softras

// ClampPolicy selects how DrawFunc keeps plotted samples inside the pixmap.
type ClampPolicy uint8

const (
	// ClampBoth clamps sample rows into [0, height-1]. This is the default.
	ClampBoth ClampPolicy = iota

	// ClampUpper clamps only the bottom edge, truncating the row toward
	// zero first. Samples that land above the top edge produce an
	// out-of-bounds write and panic, so plots that leave the pixmap are
	// caught instead of flattened.
	ClampUpper
)

// String returns the policy name.
func (p ClampPolicy) String() string {
	switch p {
	case ClampBoth:
		return "both"
	case ClampUpper:
		return "upper"
	default:
		return "unknown"
	}
}

// Option configures a Rasterizer during creation.
//
// Example:
//
//	r := softras.NewRasterizer(pm, softras.WithClampPolicy(softras.ClampUpper))
type Option func(*options)

// options holds optional configuration for Rasterizer creation.
type options struct {
	clamp ClampPolicy
}

// defaultOptions returns the default rasterizer options.
func defaultOptions() options {
	return options{
		clamp: ClampBoth,
	}
}

// WithClampPolicy sets the clamp policy used by DrawFunc.
func WithClampPolicy(p ClampPolicy) Option {
	return func(o *options) {
		o.clamp = p
	}
}
