package dif

import "sutext.github.io/difio/coder"

// Property is one name/value pair of a Dictionary.
type Property struct {
	Name  string
	Value string
}

func (p *Property) fields() []coder.Field {
	return []coder.Field{
		coder.StringField("name", &p.Name),
		coder.StringField("value", &p.Value),
	}
}

func (p *Property) ReadFrom(d coder.Decoder) error {
	return coder.ReadFields(d, p.fields()...)
}

func (p *Property) WriteTo(e coder.Encoder) error {
	return coder.WriteFields(e, p.fields()...)
}

// Dictionary is an ordered list of string properties. Order is preserved
// across a round trip; duplicate names are kept as they appear.
type Dictionary []Property

func (m *Dictionary) ReadFrom(d coder.Decoder) error {
	return coder.ReadValues(d, (*[]Property)(m))
}

func (m *Dictionary) WriteTo(e coder.Encoder) error {
	return coder.WriteValues(e, []Property(*m))
}

// Get returns the value of the first property called name.
func (m Dictionary) Get(name string) (string, bool) {
	for _, p := range m {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Set replaces the first property called name, or appends one.
func (m *Dictionary) Set(name, value string) {
	for i := range *m {
		if (*m)[i].Name == name {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, Property{Name: name, Value: value})
}
