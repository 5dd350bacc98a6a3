// Package shim supplies stand-ins for browser-only constructs that the PDF
// parsing path expects to find in its environment: a 2D affine transform, a
// homogeneous point and a URL parser. Registration is process-wide and
// idempotent; symbols already present are left untouched.
package shim

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"
	"sync"
)

// Symbol names under which the capabilities are registered.
const (
	SymbolMatrix = "DOMMatrix"
	SymbolPoint  = "DOMPoint"
	SymbolURL    = "URL"
)

// Matrix is a 2D affine transform with coefficients laid out as
//
//	| A C E |
//	| B D F |
//
// A new Matrix is the identity. All mutating operations compose in place and
// return the receiver so calls can be chained.
type Matrix struct {
	A, B, C, D, E, F float64
}

// NewMatrix returns an identity matrix.
func NewMatrix() *Matrix {
	return &Matrix{A: 1, D: 1}
}

// IsIdentity reports whether the matrix is the identity transform.
func (m *Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1 && m.E == 0 && m.F == 0
}

// Multiply composes m with n (m = m x n) and returns m.
func (m *Matrix) Multiply(n *Matrix) *Matrix {
	a := m.A*n.A + m.C*n.B
	b := m.B*n.A + m.D*n.B
	c := m.A*n.C + m.C*n.D
	d := m.B*n.C + m.D*n.D
	e := m.A*n.E + m.C*n.F + m.E
	f := m.B*n.E + m.D*n.F + m.F
	m.A, m.B, m.C, m.D, m.E, m.F = a, b, c, d, e, f
	return m
}

// Translate applies a translation by (x, y).
func (m *Matrix) Translate(x, y float64) *Matrix {
	return m.Multiply(&Matrix{A: 1, D: 1, E: x, F: y})
}

// Scale applies a scale by (x, y).
func (m *Matrix) Scale(x, y float64) *Matrix {
	return m.Multiply(&Matrix{A: x, D: y})
}

// Rotate applies a rotation by theta radians.
func (m *Matrix) Rotate(theta float64) *Matrix {
	sin, cos := math.Sincos(theta)
	return m.Multiply(&Matrix{A: cos, B: sin, C: -sin, D: cos})
}

// SkewX applies a horizontal skew by theta radians.
func (m *Matrix) SkewX(theta float64) *Matrix {
	return m.Multiply(&Matrix{A: 1, C: math.Tan(theta), D: 1})
}

// SkewY applies a vertical skew by theta radians.
func (m *Matrix) SkewY(theta float64) *Matrix {
	return m.Multiply(&Matrix{A: 1, B: math.Tan(theta), D: 1})
}

// Apply transforms the point p by m.
func (m *Matrix) Apply(p *Point) *Point {
	return &Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
		Z: p.Z,
		W: p.W,
	}
}

// Point is a homogeneous point. The zero coordinate carries W=1, so always
// construct points through NewPoint.
type Point struct {
	X, Y, Z, W float64
}

// NewPoint returns a point at the origin with W=1.
func NewPoint() *Point {
	return &Point{W: 1}
}

// ParseURL delegates URL parsing to the host platform.
func ParseURL(raw string) (*url.URL, error) {
	return url.Parse(raw)
}

var (
	installOnce sync.Once

	registryMu sync.RWMutex
	registry   = make(map[string]interface{})
)

// Install registers the three capabilities into the process-wide registry.
// It is idempotent and safe to call from racing goroutines: every installer
// converges on the same registered state, and symbols that are already
// present are never replaced.
func Install() {
	installOnce.Do(func() {
		register(SymbolMatrix, NewMatrix)
		register(SymbolPoint, NewPoint)
		register(SymbolURL, ParseURL)
	})
}

func register(name string, capability interface{}) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		return
	}
	registry[name] = capability
}

// Installed reports whether a symbol is present in the registry.
func Installed(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

// Require returns an error naming every missing symbol, or nil when all are
// present. The PDF extractor calls this before parsing so a skipped Install
// surfaces as a parse failure rather than a crash inside the parser.
func Require(names ...string) error {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var missing []string
	for _, name := range names {
		if _, ok := registry[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("required runtime symbols not installed: %s", strings.Join(missing, ", "))
}
