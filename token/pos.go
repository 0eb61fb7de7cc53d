package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc tracks newline offsets in a document so byte offsets can be
// rendered as line/column pairs after the fact.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] == i {
		return
	}
	if i >= len(p.d) || p.d[i] != '\n' {
		panic("pos: not a newline offset")
	}
	p.n = append(p.n, i)
}

// LineCol returns the 1-based line and column of a byte offset.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 1, off + 1
	}
	return di + 1, off - p.n[di-1]
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

// End returns the position one past the last byte of the document.
func (p *PosDoc) End() *Pos {
	return &Pos{I: len(p.d), D: p}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := "?"
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
