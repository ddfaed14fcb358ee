package fixmath

import "encoding/binary"
import "errors"

import "gopkg.in/yaml.v3"

// Implements [encoding.TextMarshaler] using [Fixed.String]().
// TOML (BurntSushi/toml) and JSON map keys go through this.
func (self Fixed) MarshalText() ([]byte, error) {
	return self.AppendString(nil), nil
}

// Implements [encoding.TextUnmarshaler] using [Parse]().
func (self *Fixed) UnmarshalText(text []byte) error {
	value, err := parse("UnmarshalText", string(text))
	if err != nil { return err }
	*self = value
	return nil
}

// Encodes the value as a JSON number with the same digits
// as [Fixed.String]().
func (self Fixed) MarshalJSON() ([]byte, error) {
	return self.AppendString(nil), nil
}

// Accepts JSON numbers and JSON strings in the format of [Parse]().
// Exponents are not supported. A JSON null leaves the value untouched.
func (self *Fixed) UnmarshalJSON(data []byte) error {
	text := string(data)
	if text == "null" { return nil }
	if len(text) >= 2 && text[0] == '"' && text[len(text) - 1] == '"' {
		text = text[1 : len(text) - 1]
	}
	value, err := parse("UnmarshalJSON", text)
	if err != nil { return err }
	*self = value
	return nil
}

// Implements [encoding.BinaryMarshaler]. The encoding is the raw
// Q16.16 value as 4 big endian bytes.
func (self Fixed) MarshalBinary() ([]byte, error) {
	return binary.BigEndian.AppendUint32(make([]byte, 0, 4), uint32(self)), nil
}

// Implements [encoding.BinaryUnmarshaler]. See [Fixed.MarshalBinary]().
func (self *Fixed) UnmarshalBinary(data []byte) error {
	if len(data) != 4 {
		return errors.New("fixmath.UnmarshalBinary: expected 4 bytes")
	}
	*self = Fixed(int32(binary.BigEndian.Uint32(data)))
	return nil
}

// Implements [yaml.Marshaler]. Whole values are tagged as
// !!int and the rest as !!float, so they are written unquoted.
//
// [yaml.Marshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Marshaler
func (self Fixed) MarshalYAML() (interface{}, error) {
	tag := "!!float"
	if self.IsWhole() { tag = "!!int" }
	return &yaml.Node{ Kind: yaml.ScalarNode, Tag: tag, Value: self.String() }, nil
}

// Implements [yaml.Unmarshaler]. Accepts any scalar in the
// format of [Parse]().
//
// [yaml.Unmarshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Unmarshaler
func (self *Fixed) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &ParseError{ Func: "UnmarshalYAML", Input: node.Value, Err: ErrSyntax }
	}
	value, err := parse("UnmarshalYAML", node.Value)
	if err != nil { return err }
	*self = value
	return nil
}
