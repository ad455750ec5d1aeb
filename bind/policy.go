package bind

// ErrorPolicy selects what a failing status becomes on the host side.
type ErrorPolicy int

const (
	// RaiseOnFailure raises StatusNotOk for a failure and returns nil for OK.
	RaiseOnFailure ErrorPolicy = iota
	// NeverRaise always returns a Status wrapper, even for OK.
	NeverRaise
)

func (p ErrorPolicy) String() string {
	switch p {
	case RaiseOnFailure:
		return "raise_on_failure"
	case NeverRaise:
		return "never_raise"
	default:
		return "unknown"
	}
}

// ReturnPolicy selects how pointer and reference results reach the host.
type ReturnPolicy int

const (
	Automatic ReturnPolicy = iota
	Copy
	Move
	// Reference hands the host a view of native storage. The storage must
	// outlive every host use of the view.
	Reference
)

func (p ReturnPolicy) String() string {
	switch p {
	case Automatic:
		return "automatic"
	case Copy:
		return "copy"
	case Move:
		return "move"
	case Reference:
		return "reference"
	default:
		return "unknown"
	}
}

// Options is the per-binding conversion policy.
type Options struct {
	Errors ErrorPolicy
	Return ReturnPolicy
}

type Option func(*Options)

// DoNotThrow makes the conversion return a Status wrapper instead of raising.
func DoNotThrow() Option {
	return func(o *Options) { o.Errors = NeverRaise }
}

func WithReturnPolicy(p ReturnPolicy) Option {
	return func(o *Options) { o.Return = p }
}

func ReturnReference() Option {
	return WithReturnPolicy(Reference)
}

func resolveOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
