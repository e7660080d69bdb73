package coder

// ExtendedFlag is the top bit of an extended sequence count. When set, one
// uint8 parameter follows the count.
//
// There is no writer for the extended form. A producer that needs it writes
// count|ExtendedFlag with WriteScalar, then the parameter byte, then the
// elements in whatever representation its condition selects.
const ExtendedFlag uint32 = 0x80000000

// Header is the decoded prefix of an extended sequence.
type Header struct {
	Count    uint32 // with ExtendedFlag cleared
	Extended bool
	Param    uint8 // zero unless Extended
}

// Condition picks the alternate representation for element i.
type Condition func(h Header, i uint32) bool

// WhenExtended selects the alternate representation for every element of an
// extended sequence.
func WhenExtended(h Header, _ uint32) bool {
	return h.Extended
}

// WhenParam selects the alternate representation for every element of an
// extended sequence whose parameter equals p.
func WhenParam(p uint8) Condition {
	return func(h Header, _ uint32) bool {
		return h.Extended && h.Param == p
	}
}

func ReadHeader(d Decoder) (Header, error) {
	var h Header
	if err := ReadScalar(d, &h.Count); err != nil {
		return h, err
	}
	if h.Count&ExtendedFlag != 0 {
		h.Count &^= ExtendedFlag
		h.Extended = true
		if err := ReadScalar(d, &h.Param); err != nil {
			return h, wrapField("param", err)
		}
	}
	if h.Count > d.Options().MaxCount {
		return h, ErrCountTooLarge
	}
	return h, nil
}

// ReadExtended reads an extended sequence into s. Each element is decoded
// with alternate when cond reports true for it, and with normal otherwise.
func ReadExtended[T any](d Decoder, s *[]T, cond Condition, normal, alternate ElementFunc[T]) (Header, error) {
	h, err := ReadHeader(d)
	if err != nil {
		return h, err
	}
	*s = make([]T, 0, prealloc(h.Count))
	for i := uint32(0); i < h.Count; i++ {
		elem := normal
		if cond(h, i) {
			elem = alternate
		}
		var v T
		if err := elem(d, &v); err != nil {
			return h, wrapIndex(i, err)
		}
		*s = append(*s, v)
	}
	return h, nil
}

// EachExtended reads an extended header and calls normal or alternate once
// per element, leaving the element storage to the caller.
func EachExtended(d Decoder, cond Condition, normal, alternate func(d Decoder, i uint32) error) (Header, error) {
	h, err := ReadHeader(d)
	if err != nil {
		return h, err
	}
	for i := uint32(0); i < h.Count; i++ {
		fn := normal
		if cond(h, i) {
			fn = alternate
		}
		if err := fn(d, i); err != nil {
			return h, wrapIndex(i, err)
		}
	}
	return h, nil
}
