package connectivity

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/junction/point"
	"go.uber.org/zap"
)

// Sentinel errors for connectivity resolution.
var (
	// ErrUnreachable indicates that every pair was processed without all
	// points ending up in one circuit.
	ErrUnreachable = errors.New("connectivity: full connectivity never reached")

	// ErrTooFewPoints is returned for fewer than two points.
	ErrTooFewPoints = errors.New("connectivity: at least two points are required")

	// ErrDuplicatePoint is returned when the same point appears more than once.
	// Equal points share one identity, so the circuit could never reach
	// len(points) members; it therefore wraps ErrUnreachable.
	ErrDuplicatePoint = fmt.Errorf("%w: duplicate point", ErrUnreachable)

	// ErrInvalidConnections is returned by Connect for a non-positive connection count.
	ErrInvalidConnections = errors.New("connectivity: connection count must be positive")

	// ErrTooFewCircuits is returned by Circuits.Product when fewer circuits exist than requested.
	ErrTooFewCircuits = errors.New("connectivity: not enough circuits")

	// ErrProductOverflow is returned by Circuits.Product when the product exceeds int64.
	ErrProductOverflow = errors.New("connectivity: circuit size product overflows int64")
)

// ScalarFunc derives the reported scalar from the completing pair.
type ScalarFunc func(a, b point.Point) *big.Int

// XProduct multiplies the x-coordinates of a and b. It is the default ScalarFunc.
// The product of two int64 values needs up to 127 bits, hence *big.Int.
func XProduct(a, b point.Point) *big.Int {
	return new(big.Int).Mul(big.NewInt(a.X), big.NewInt(b.X))
}

// Option configures Resolve and Connect via functional arguments.
type Option func(*Options)

// Options holds the tunables shared by Resolve and Connect.
type Options struct {
	// Scalar derives Result.Scalar from the completing pair.
	Scalar ScalarFunc

	// Logger receives Debug entries for merges and completion.
	Logger *zap.Logger

	// OnPair is called after each processed pair with whether it merged two
	// circuits and the number of circuits remaining.
	OnPair func(p Pair, merged bool, circuits int)
}

// DefaultOptions returns Options with XProduct, a no-op logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Scalar: XProduct,
		Logger: zap.NewNop(),
		OnPair: func(Pair, bool, int) {},
	}
}

// WithScalar replaces the default x-coordinate product. nil is ignored.
func WithScalar(fn ScalarFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Scalar = fn
		}
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnPair registers a callback run after every processed pair. nil is ignored.
func WithOnPair(fn func(p Pair, merged bool, circuits int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPair = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result describes the merge that completed full connectivity.
type Result struct {
	// A and B are the completing pair, A being the lower input index.
	A, B point.Point
	// I and J are the input indices of A and B (I < J).
	I, J int
	// Distance is the Euclidean distance between A and B.
	Distance float64
	// Scalar is Options.Scalar(A, B); by default A.X * B.X.
	Scalar *big.Int
	// Processed counts pairs examined, including skipped ones.
	Processed int
	// Merges counts unions performed; always len(points)-1 on success.
	Merges int
}
