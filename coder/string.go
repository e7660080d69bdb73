package coder

// MaxStringLen is the longest string a uint8 length prefix can describe.
const MaxStringLen = 255

// ReadString reads a uint8 length followed by that many bytes, one scalar
// read per byte.
func ReadString(d Decoder, s *string) error {
	b, err := readBytes(d)
	if err != nil {
		return err
	}
	*s = string(b)
	return nil
}

// WriteString fails with ErrStringTooLong, writing nothing, when s does not
// fit in MaxStringLen bytes. Use TruncateString first to cut it instead.
func WriteString(e Encoder, s string) error {
	return writeBytes(e, []byte(s))
}

func ReadBytes(d Decoder, b *[]byte) error {
	p, err := readBytes(d)
	if err != nil {
		return err
	}
	*b = p
	return nil
}

func WriteBytes(e Encoder, b []byte) error {
	return writeBytes(e, b)
}

// TruncateString cuts s to MaxStringLen bytes. It may split a multi-byte
// UTF-8 sequence; the format carries bytes, not text.
func TruncateString(s string) string {
	if len(s) > MaxStringLen {
		return s[:MaxStringLen]
	}
	return s
}

func readBytes(d Decoder) ([]byte, error) {
	var n uint8
	if err := ReadScalar(d, &n); err != nil {
		return nil, err
	}
	b := make([]byte, 0, n)
	for i := 0; i < int(n); i++ {
		var c byte
		if err := ReadScalar(d, &c); err != nil {
			return nil, err
		}
		b = append(b, c)
	}
	return b, nil
}

func writeBytes(e Encoder, b []byte) error {
	if len(b) > MaxStringLen {
		return ErrStringTooLong
	}
	if err := WriteScalar(e, uint8(len(b))); err != nil {
		return err
	}
	for _, c := range b {
		if err := WriteScalar(e, c); err != nil {
			return err
		}
	}
	return nil
}
