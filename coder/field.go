package coder

import "sutext.github.io/difio/xlog"

// Field is one named entry in a composite's wire layout. A composite builds
// its []Field once and hands the same list to ReadFields and WriteFields, so
// both directions always agree on the order. The name is for diagnostics
// only and never reaches the wire.
type Field struct {
	Name  string
	read  func(Decoder) error
	write func(Encoder) error
}

func ScalarField[T Scalar](name string, v *T) Field {
	return Field{
		Name:  name,
		read:  func(d Decoder) error { return ReadScalar(d, v) },
		write: func(e Encoder) error { return WriteScalar(e, *v) },
	}
}

func ValueField(name string, v Codable) Field {
	return Field{
		Name:  name,
		read:  v.ReadFrom,
		write: v.WriteTo,
	}
}

func StringField(name string, s *string) Field {
	return Field{
		Name:  name,
		read:  func(d Decoder) error { return ReadString(d, s) },
		write: func(e Encoder) error { return WriteString(e, *s) },
	}
}

func ScalarsField[T Scalar](name string, s *[]T) Field {
	return Field{
		Name:  name,
		read:  func(d Decoder) error { return ReadScalars(d, s) },
		write: func(e Encoder) error { return WriteScalars(e, *s) },
	}
}

func ValuesField[T any, PT interface {
	*T
	Codable
}](name string, s *[]T) Field {
	return Field{
		Name:  name,
		read:  func(d Decoder) error { return ReadValues[T, PT](d, s) },
		write: func(e Encoder) error { return WriteValues[T, PT](e, *s) },
	}
}

// ReadFields reads fields in order and stops at the first failure.
func ReadFields(d Decoder, fields ...Field) error {
	for _, f := range fields {
		if traceFields {
			d.Options().Logger.Debug("read field", xlog.Field(f.Name))
		}
		if err := f.read(d); err != nil {
			return wrapField(f.Name, err)
		}
	}
	return nil
}

// WriteFields writes fields in order and stops at the first failure.
func WriteFields(e Encoder, fields ...Field) error {
	for _, f := range fields {
		if traceFields {
			e.Options().Logger.Debug("write field", xlog.Field(f.Name))
		}
		if err := f.write(e); err != nil {
			return wrapField(f.Name, err)
		}
	}
	return nil
}
