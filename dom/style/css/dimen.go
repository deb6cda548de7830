package css

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/stylecheck/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
	. "github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent Percent
	exact   float64 // unrounded percentage
	flags   uint32
}

/*
type DimenT
	= None
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n Percent) DimenT {
	return DimenT{percent: n, exact: float64(n), flags: dimenPercent}
}

// FractionalPercentage creates a CSS dimension with a %-relative value
// which need not be a whole number. Its Percent is rounded.
func FractionalPercentage(f float64) DimenT {
	return DimenT{percent: FromFloat(f), exact: f, flags: dimenPercent}
}

// pxPerPT is the CSS reference ratio: 1px = 0.75pt.
const pxPerPT = 0.75

// Px creates a fixed CSS dimension from a length in CSS pixels.
func Px(px float64) DimenT {
	return JustDimen(dimen.DU(math.Round(px * pxPerPT * float64(dimen.PT))))
}

// IsNone is true for a dimension which could not be parsed.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

func (d DimenT) String() string {
	switch {
	case d.flags&kindMask == dimenAbsolute:
		return FormatPx(d.toPx())
	case d.flags&kindMask == dimenAuto:
		return "auto"
	case d.flags&kindMask == dimenInherit:
		return "inherit"
	case d.flags&kindMask == dimenInitial:
		return "initial"
	case d.flags&dimenPercent > 0:
		return trimFloat(d.exact) + "%"
	}
	return "none"
}

func (d DimenT) toPx() float64 {
	return float64(d.d) / float64(dimen.PT) / pxPerPT
}

// ParseDimen interprets a computed length value. Absolute values must be
// given in px (which is what getComputedStyle reports).
func ParseDimen(p style.Property) DimenT {
	s := strings.TrimSpace(p.String())
	switch s {
	case "auto":
		return Auto()
	case "inherit":
		return Inherit()
	case "initial":
		return Initial()
	case "0":
		return Px(0)
	}
	n := ParseFloat(s)
	if math.IsNaN(n) {
		return DimenT{}
	}
	switch {
	case strings.HasSuffix(s, "px"):
		return Px(n)
	case strings.HasSuffix(s, "%"):
		return FractionalPercentage(n)
	}
	tracer().Debugf("cannot interpret %q as a dimension", s)
	return DimenT{}
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *Percent) *Matcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Default T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}

// PxValue returns the length of an absolute dimension in CSS pixels, and
// NaN for every other kind of dimension.
func PxValue(d DimenT) float64 {
	m := DimenPattern[float64](d)
	return m.OneOf(DimenPatterns[float64]{
		Just:    d.toPx(),
		Auto:    math.NaN(),
		Inherit: math.NaN(),
		Initial: math.NaN(),
		Default: math.NaN(),
	})
}

// PercentValue returns the exact value of a percentage, and NaN for every
// other kind of dimension.
func PercentValue(d DimenT) float64 {
	if d.flags&dimenPercent == 0 {
		return math.NaN()
	}
	return d.exact
}

// FormatPx serializes a pixel length the way browsers do, dropping
// floating point noise beyond four decimals.
func FormatPx(px float64) string {
	px = math.Round(px*10000) / 10000
	if px == 0 {
		px = 0 // no "-0px"
	}
	return fmt.Sprintf("%spx", trimFloat(px))
}
