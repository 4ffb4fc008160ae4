package guikit

// Option configures a widget call.
type Option func(*options)

// options holds widget configuration keyed by OptKey name.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
//
// Example:
//
//	var OptTint = guikit.NewOptKey("tint", guikit.ColorWhite)
//
//	ctx.Button("OK", guikit.WithOpt(OptTint, guikit.ColorRed))
//	tint := guikit.ApplyAndGet(opts, OptTint)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default if unset or of
// the wrong type.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.extensions[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages that build their own widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// RangeValue holds an inclusive min/max range for sliders and number inputs.
type RangeValue struct {
	Min, Max float64
	HasRange bool
}

// Clamp limits v to the range; a range that was never set passes v through.
func (r RangeValue) Clamp(v float64) float64 {
	if !r.HasRange {
		return v
	}
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Built-in option keys.
var (
	OptID          = NewOptKey("id", "")
	OptDisabled    = NewOptKey("disabled", false)
	OptWidth       = NewOptKey[float32]("width", 0)
	OptHeight      = NewOptKey[float32]("height", 0)
	OptFormat      = NewOptKey("format", "")
	OptRange       = NewOptKey("range", RangeValue{})
	OptPlaceholder = NewOptKey("placeholder", "")
)

// WithID sets an explicit ID for the widget, replacing its label as the
// hash source.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled disables the widget (grayed out, no interaction).
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithWidth sets a specific width for the widget.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight sets a specific height for the widget.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithFormat sets the display format for numeric values ("%.2f").
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithRange sets the inclusive minimum and maximum values.
func WithRange(minVal, maxVal float64) Option {
	return WithOpt(OptRange, RangeValue{Min: minVal, Max: maxVal, HasRange: true})
}

// WithPlaceholder sets the text a combo shows when nothing is selected.
func WithPlaceholder(text string) Option { return WithOpt(OptPlaceholder, text) }
