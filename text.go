package fixmath

import "math/bits"
import "strconv"

// Fractional digits considered while parsing. Anything beyond
// can't change the rounded result (the resolution is ~1.5e-5).
const parseFracDigits = 17
const parseFracScale  = 100000000000000000 // 10^parseFracDigits

// Parses a decimal number like "3", "-0.25", "+12.5" or ".5" into
// the nearest [Fixed] value, rounding ties away from zero. Exponents,
// whitespace and any other characters are rejected. The conversion
// doesn't involve floating point at any step.
//
// The returned error, if any, is a [*ParseError] wrapping [ErrSyntax]
// or [ErrRange].
func Parse(text string) (Fixed, error) {
	return parse("Parse", text)
}

// Like [Parse](), but panics on error. Meant for constants
// and tests.
func MustParse(text string) Fixed {
	value, err := Parse(text)
	if err != nil { panic(err) }
	return value
}

func parse(funcName, text string) (Fixed, error) {
	index := 0
	negative := false
	if len(text) > 0 && (text[0] == '+' || text[0] == '-') {
		negative = (text[0] == '-')
		index += 1
	}

	// integer part
	var intPart uint64
	var digits int
	for ; index < len(text) && isDigit(text[index]); index++ {
		if intPart <= 1 << 20 { // past that, it's out of range anyway
			intPart = intPart*10 + uint64(text[index] - '0')
		}
		digits += 1
	}

	// fractional part
	var fracPart uint64
	var fracDigits int
	if index < len(text) && text[index] == '.' {
		index += 1
		for ; index < len(text) && isDigit(text[index]); index++ {
			if fracDigits < parseFracDigits {
				fracPart = fracPart*10 + uint64(text[index] - '0')
				fracDigits += 1
			}
			digits += 1
		}
	}

	if index != len(text) || digits == 0 {
		return 0, &ParseError{ Func: funcName, Input: text, Err: ErrSyntax }
	}
	if intPart > 1 << 15 {
		return 0, &ParseError{ Func: funcName, Input: text, Err: ErrRange }
	}

	// round fracPart/10^fracDigits to 65536ths
	for i := fracDigits; i < parseFracDigits; i++ { fracPart *= 10 }
	hi, lo := bits.Mul64(fracPart, Scale)
	quo, rem := bits.Div64(hi, lo, parseFracScale)
	if rem >= parseFracScale - rem { quo += 1 }

	magnitude := intPart << FracBits + quo
	if negative {
		if magnitude > 1 << 31 {
			return 0, &ParseError{ Func: funcName, Input: text, Err: ErrRange }
		}
		return Fixed(-int64(magnitude)), nil
	}
	if magnitude > uint64(MaxFixed) {
		return 0, &ParseError{ Func: funcName, Input: text, Err: ErrRange }
	}
	return Fixed(magnitude), nil
}

func isDigit(char byte) bool { return char >= '0' && char <= '9' }

// Returns the shortest decimal representation that [Parse]()
// converts back to the same value (e.g. "1.5", "-0.1", "3").
// At most 5 fractional digits are ever needed.
func (self Fixed) String() string {
	return string(self.AppendString(make([]byte, 0, 16)))
}

// Like [Fixed.String](), but appending to the given buffer.
// The buffer is owned by the caller.
func (self Fixed) AppendString(buffer []byte) []byte {
	magnitude := absU64(int64(self))
	if self < 0 { buffer = append(buffer, '-') }
	buffer = strconv.AppendUint(buffer, magnitude >> FracBits, 10)
	fract := magnitude & fracMask
	if fract == 0 { return buffer }

	pow := uint64(1)
	for digits := 1; digits <= 5; digits++ {
		pow *= 10

		// nearest decimal with the current number of digits
		decimal := (fract*pow) >> FracBits
		if (fract*pow) & fracMask >= Scale/2 { decimal += 1 }
		if decimal >= pow { continue } // would need a carry

		// check that parsing brings us back to fract
		back, rem := (decimal << FracBits)/pow, (decimal << FracBits)%pow
		if rem >= pow - rem { back += 1 }
		if back != fract { continue }

		return appendFraction(buffer, decimal, digits)
	}
	panic("unreachable") // 5 digits always round-trip
}

// Returns the exact decimal expansion of the value. Since the
// scale is a power of two, it never needs more than 16
// fractional digits (e.g. Delta is "0.0000152587890625").
func (self Fixed) ExactString() string {
	magnitude := absU64(int64(self))
	buffer := make([]byte, 0, 24)
	if self < 0 { buffer = append(buffer, '-') }
	buffer = strconv.AppendUint(buffer, magnitude >> FracBits, 10)
	fract := magnitude & fracMask
	if fract == 0 { return string(buffer) }
	
	// 10^16/2^16 == 5^16 * 2^0 == 152587890625
	return string(appendFraction(buffer, fract*152587890625, 16))
}

// Appends '.' and the given fractional digits, zero padded to
// the given width and without trailing zeros.
func appendFraction(buffer []byte, fraction uint64, width int) []byte {
	for width > 0 && fraction % 10 == 0 {
		fraction /= 10
		width -= 1
	}
	buffer = append(buffer, '.')
	start := len(buffer)
	buffer = strconv.AppendUint(buffer, fraction, 10)
	padding := width - (len(buffer) - start)
	if padding <= 0 { return buffer }

	// shift digits right and pad with zeros
	for i := 0; i < padding; i++ { buffer = append(buffer, '0') }
	copy(buffer[start + padding:], buffer[start:len(buffer) - padding])
	for i := 0; i < padding; i++ { buffer[start + i] = '0' }
	return buffer
}
