// Package pretty draws a primer pair on its template as an ASCII block.
package pretty

import (
	"fmt"
	"strings"

	"qpcr/core/design"
)

// Options control the ASCII rendering.
type Options struct {
	// Interior width cap for readability (dots section). If <=0, use default (95).
	MaxGap int

	BarGlyph string // default "|"
	DotGlyph string // default "."
}

// DefaultOptions is the look used by --pretty.
var DefaultOptions = Options{
	MaxGap:   95,
	BarGlyph: "|",
	DotGlyph: ".",
}

const (
	minInterPrimerGap = 5
	linePrefix        = "# "

	prefixPlus  = "5'-"
	suffixPlus  = "-3'"
	prefixMinus = "3'-"
	suffixMinus = "-5'"
	arrowRight  = "-->"
	arrowLeft   = "<--"
)

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func (o Options) withDefaults() Options {
	if o.MaxGap <= 0 {
		o.MaxGap = DefaultOptions.MaxGap
	}
	if o.BarGlyph == "" {
		o.BarGlyph = DefaultOptions.BarGlyph
	}
	if o.DotGlyph == "" {
		o.DotGlyph = DefaultOptions.DotGlyph
	}
	return o
}

// RenderPairWithOptions prints the forward primer over the plus strand and
// the reverse primer (3'->5') under the minus strand. The amplicon interior
// is drawn as dots, capped at opt.MaxGap.
func RenderPairWithOptions(p design.Pair, opt Options) string {
	opt = opt.withDefaults()
	fwd := p.Forward.Seq
	rev := p.Reverse.Seq
	if fwd == "" || rev == "" {
		return linePrefix + "(pretty not available: primer missing)\n\n"
	}
	// The minus strand under the binding window, read 3'->5', is the
	// reverse primer written backwards.
	minusSite := reverseString(rev)

	aLen, bLen := len(fwd), len(rev)
	interior := max(p.AmpLen-aLen-bLen, 0)

	inner := min(opt.MaxGap, interior)
	innerPlus := max(inner, bLen+minInterPrimerGap)
	innerMinus := max(inner, aLen+minInterPrimerGap)

	contPlus := aLen + innerPlus
	contMinus := innerMinus + bLen
	if contMinus > contPlus {
		innerPlus += contMinus - contPlus
	} else if contPlus > contMinus {
		innerMinus += contPlus - contMinus
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s%s%s%s\n", linePrefix, prefixPlus, fwd, suffixPlus)
	fmt.Fprintf(&b, "%s%s%s%s\n", linePrefix, strings.Repeat(" ", len(prefixPlus)),
		strings.Repeat(opt.BarGlyph, aLen), arrowRight)

	fmt.Fprintf(&b, "%s%s%s%s%s # (+) %d\n",
		linePrefix, prefixPlus, fwd, strings.Repeat(opt.DotGlyph, innerPlus), suffixPlus, p.Forward.Pos+1)
	fmt.Fprintf(&b, "%s%s%s%s%s # (-) %d\n",
		linePrefix, prefixMinus, strings.Repeat(opt.DotGlyph, innerMinus), minusSite, suffixMinus,
		p.Reverse.Pos+p.Reverse.Len)

	siteStart := len(prefixMinus) + innerMinus
	padBars := max(siteStart-len(arrowLeft), 0)
	fmt.Fprintf(&b, "%s%s%s%s\n", linePrefix, strings.Repeat(" ", padBars), arrowLeft,
		strings.Repeat(opt.BarGlyph, bLen))

	padPrimer := max(siteStart-len(prefixMinus), 0)
	fmt.Fprintf(&b, "%s%s%s%s%s\n", linePrefix, strings.Repeat(" ", padPrimer), prefixMinus,
		minusSite, suffixMinus)

	b.WriteString("#\n")
	return b.String()
}

// RenderPair uses DefaultOptions.
func RenderPair(p design.Pair) string {
	return RenderPairWithOptions(p, DefaultOptions)
}
