package coder

// ElementFunc decodes one element of a sequence into v.
type ElementFunc[T any] func(d Decoder, v *T) error

// ScalarElem reads elements on the scalar path.
func ScalarElem[T Scalar]() ElementFunc[T] {
	return ReadScalar[T]
}

// ValueElem reads elements through their own ReadFrom.
func ValueElem[T any, PT interface {
	*T
	Decodable
}]() ElementFunc[T] {
	return func(d Decoder, v *T) error {
		return PT(v).ReadFrom(d)
	}
}

// WidenElem reads a From scalar and stores it converted to To, for element
// representations that are narrower on the wire than in memory.
func WidenElem[From, To Number]() ElementFunc[To] {
	return func(d Decoder, v *To) error {
		var f From
		if err := ReadScalar(d, &f); err != nil {
			return err
		}
		*v = To(f)
		return nil
	}
}

// ReadCount reads a uint32 sequence count and checks it against the
// decoder's MaxCount.
func ReadCount(d Decoder) (uint32, error) {
	var n uint32
	if err := ReadScalar(d, &n); err != nil {
		return 0, err
	}
	if n > d.Options().MaxCount {
		return 0, ErrCountTooLarge
	}
	return n, nil
}

// WriteCount writes a plain sequence count. Counts that would set
// ExtendedFlag are rejected.
func WriteCount(e Encoder, n int) error {
	if n < 0 || uint64(n) > uint64(^ExtendedFlag) {
		return ErrCountTooLarge
	}
	return WriteScalar(e, uint32(n))
}

// ReadSlice reads a count followed by that many elements. s is replaced
// only once the count is known; an element failure aborts with the elements
// read so far left in s.
func ReadSlice[T any](d Decoder, s *[]T, elem ElementFunc[T]) error {
	count, err := ReadCount(d)
	if err != nil {
		return err
	}
	*s = make([]T, 0, prealloc(count))
	for i := uint32(0); i < count; i++ {
		var v T
		if err := elem(d, &v); err != nil {
			return wrapIndex(i, err)
		}
		*s = append(*s, v)
	}
	return nil
}

func ReadScalars[T Scalar](d Decoder, s *[]T) error {
	return ReadSlice(d, s, ScalarElem[T]())
}

func ReadValues[T any, PT interface {
	*T
	Decodable
}](d Decoder, s *[]T) error {
	return ReadSlice(d, s, ValueElem[T, PT]())
}

func WriteScalars[T Scalar](e Encoder, s []T) error {
	if err := WriteCount(e, len(s)); err != nil {
		return err
	}
	for i, v := range s {
		if err := WriteScalar(e, v); err != nil {
			return wrapIndex(uint32(i), err)
		}
	}
	return nil
}

func WriteValues[T any, PT interface {
	*T
	Encodable
}](e Encoder, s []T) error {
	if err := WriteCount(e, len(s)); err != nil {
		return err
	}
	for i := range s {
		if err := PT(&s[i]).WriteTo(e); err != nil {
			return wrapIndex(uint32(i), err)
		}
	}
	return nil
}
