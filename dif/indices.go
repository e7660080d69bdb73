package dif

import (
	"math"

	"sutext.github.io/difio/coder"
)

// IndexList is a list of vertex indices. Exporters may flag the count and
// set the parameter to zero to store every index as a uint16.
type IndexList struct {
	Indices []uint32
	// Compact is set when the list was read in, or should be written in,
	// the uint16 form.
	Compact bool
}

func (l *IndexList) ReadFrom(d coder.Decoder) error {
	h, err := coder.ReadExtended(d, &l.Indices, coder.WhenParam(0),
		coder.ScalarElem[uint32](), coder.WidenElem[uint16, uint32]())
	if err != nil {
		return err
	}
	l.Compact = h.Extended && h.Param == 0
	return nil
}

// WriteTo uses the compact form only when Compact is set and every index
// fits in a uint16.
func (l *IndexList) WriteTo(e coder.Encoder) error {
	if !l.Compact || !fitsUint16(l.Indices) {
		return coder.WriteScalars(e, l.Indices)
	}
	if err := coder.WriteScalar(e, uint32(len(l.Indices))|coder.ExtendedFlag); err != nil {
		return err
	}
	if err := coder.WriteScalar(e, uint8(0)); err != nil {
		return err
	}
	for _, v := range l.Indices {
		if err := coder.WriteScalar(e, uint16(v)); err != nil {
			return err
		}
	}
	return nil
}

func fitsUint16(s []uint32) bool {
	if uint64(len(s)) >= uint64(coder.ExtendedFlag) {
		return false
	}
	for _, v := range s {
		if v > math.MaxUint16 {
			return false
		}
	}
	return true
}
