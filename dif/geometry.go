package dif

import "sutext.github.io/difio/coder"

type Point2[T coder.Number] struct {
	X, Y T
}

type Point3[T coder.Number] struct {
	X, Y, Z T
}

// Point4 carries W first, matching the on-disk quaternion layout.
type Point4[T coder.Number] struct {
	W, X, Y, Z T
}

type Color[T coder.Number] struct {
	Red, Green, Blue, Alpha T
}

type (
	Point2F = Point2[float32]
	Point3F = Point3[float32]
	QuatF   = Point4[float32]
	ColorI  = Color[uint8]
	ColorF  = Color[float32]
)

func (p *Point2[T]) fields() []coder.Field {
	return []coder.Field{
		coder.ScalarField("x", &p.X),
		coder.ScalarField("y", &p.Y),
	}
}

func (p *Point2[T]) ReadFrom(d coder.Decoder) error {
	return coder.ReadFields(d, p.fields()...)
}

func (p *Point2[T]) WriteTo(e coder.Encoder) error {
	return coder.WriteFields(e, p.fields()...)
}

func (p *Point3[T]) fields() []coder.Field {
	return []coder.Field{
		coder.ScalarField("x", &p.X),
		coder.ScalarField("y", &p.Y),
		coder.ScalarField("z", &p.Z),
	}
}

func (p *Point3[T]) ReadFrom(d coder.Decoder) error {
	return coder.ReadFields(d, p.fields()...)
}

func (p *Point3[T]) WriteTo(e coder.Encoder) error {
	return coder.WriteFields(e, p.fields()...)
}

func (p *Point4[T]) fields() []coder.Field {
	return []coder.Field{
		coder.ScalarField("w", &p.W),
		coder.ScalarField("x", &p.X),
		coder.ScalarField("y", &p.Y),
		coder.ScalarField("z", &p.Z),
	}
}

func (p *Point4[T]) ReadFrom(d coder.Decoder) error {
	return coder.ReadFields(d, p.fields()...)
}

func (p *Point4[T]) WriteTo(e coder.Encoder) error {
	return coder.WriteFields(e, p.fields()...)
}

func (c *Color[T]) fields() []coder.Field {
	return []coder.Field{
		coder.ScalarField("red", &c.Red),
		coder.ScalarField("green", &c.Green),
		coder.ScalarField("blue", &c.Blue),
		coder.ScalarField("alpha", &c.Alpha),
	}
}

func (c *Color[T]) ReadFrom(d coder.Decoder) error {
	return coder.ReadFields(d, c.fields()...)
}

func (c *Color[T]) WriteTo(e coder.Encoder) error {
	return coder.WriteFields(e, c.fields()...)
}
