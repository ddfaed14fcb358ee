package fixmath

import "math"
import "errors"
import "testing"

import "golang.org/x/exp/rand"

// Difference in raw units between the value and the float64
// reference rounded to the closest representable value.
func ulpDiff(value Fixed, reference float64) int64 {
	diff := int64(value) - int64(FromFloat64(reference))
	if diff < 0 { return -diff }
	return diff
}

func TestSinCosSpecialValues(t *testing.T) {
	tests := []struct {
		in  Fixed
		sin Fixed
		cos Fixed
	}{
		{0, 0, One}, {HalfPi, One, 0}, {Pi, 0, -One}, {-HalfPi, -One, 0},
		{MinFixed, -60808, FromFloat64(math.Cos(MinFloat64))},
		{MaxFixed, 60808, FromFloat64(math.Cos(MaxFixed.ToFloat64()))},
	}

	for i, test := range tests {
		sin, cos := test.in.Sin(), test.in.Cos()
		if sin != test.sin {
			t.Fatalf("test #%d: sin(%s) expected %d, but got %d", i, test.in, test.sin, sin)
		}
		if ulpDiff(cos, test.cos.ToFloat64()) > 1 {
			t.Fatalf("test #%d: cos(%s) expected %d, but got %d", i, test.in, test.cos, cos)
		}
	}
}

func TestTrigAccuracy(t *testing.T) {
	check := func(angle Fixed) {
		radians := angle.ToFloat64()
		sin, cos := angle.Sin(), angle.Cos()
		if ulpDiff(sin, math.Sin(radians)) > 1 {
			t.Fatalf("sin(%d) = %d, expected %f", angle, sin, math.Sin(radians))
		}
		if ulpDiff(cos, math.Cos(radians)) > 1 {
			t.Fatalf("cos(%d) = %d, expected %f", angle, cos, math.Cos(radians))
		}

		// sin^2 + cos^2 stays close to one
		sum := sin.Mul(sin).Add(cos.Mul(cos))
		if sum < One - 3 || sum > One + 3 {
			t.Fatalf("sin^2 + cos^2 of %d is %d", angle, sum)
		}

		if radians >= -1.4 && radians <= 1.4 {
			tan := angle.Tan()
			if ulpDiff(tan, math.Tan(radians)) > 1 {
				t.Fatalf("tan(%d) = %d, expected %f", angle, tan, math.Tan(radians))
			}
		}
	}

	for angle := -7*One; angle <= 7*One; angle += 13 { check(angle) }
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 200000; i++ { check(Fixed(rng.Uint32())) }

	// periodicity only holds approximately, since TwoPi isn't exact,
	// but shifting by a full period never moves more than a few units
	for angle := -Pi; angle <= Pi; angle += 97 {
		diff := angle.Sin() - angle.Add(TwoPi).Sin()
		if diff < -3 || diff > 3 {
			t.Fatalf("sin(%d) and sin(%d + 2*Pi) differ by %d", angle, angle, diff)
		}
	}
}

func TestTanAsymptotes(t *testing.T) {
	if HalfPi.Tan() != MinFixed { t.Fatalf("tan(HalfPi) expected MinFixed, got %d", HalfPi.Tan()) }
	if (HalfPi - 1).Tan() != MaxFixed { t.Fatalf("tan(HalfPi - 1) expected MaxFixed, got %d", (HalfPi - 1).Tan()) }
	if Half.Tan() != 35802 { t.Fatalf("tan(0.5) expected 35802, got %d", Half.Tan()) }
	if Fixed(0).Tan() != 0 { t.Fatal("tan(0) != 0") }
}

func TestAtan2(t *testing.T) {
	tests := []struct {
		y, x Fixed
		out  Fixed
	}{
		{0, 0, 0}, {0, One, 0}, {One, One, 51472}, {-One, -One, -154416},
		{0, -One, Pi}, {One, 0, HalfPi}, {-One, 0, -HalfPi},
		{MaxFixed, 1, HalfPi}, {MinFixed, 1, -HalfPi}, {0, MinFixed, Pi},
	}

	for i, test := range tests {
		out := Atan2(test.y, test.x)
		if out != test.out {
			str := "test #%d: Atan2(%s, %s) expected %d, but got %d"
			t.Fatalf(str, i, test.y, test.x, test.out, out)
		}
	}

	rng := rand.New(rand.NewSource(19))
	for i := 0; i < 200000; i++ {
		y, x := Fixed(rng.Uint32()), Fixed(rng.Uint32())
		if i % 2 == 0 { y, x = y >> 12, x >> 12 } // small magnitudes too
		out := Atan2(y, x)
		expected := math.Atan2(y.ToFloat64(), x.ToFloat64())
		if ulpDiff(out, expected) > 1 {
			t.Fatalf("rand test #%d: Atan2(%d, %d) = %d, expected %f", i, y, x, out, expected)
		}
		if out < -Pi || out > Pi {
			t.Fatalf("rand test #%d: Atan2(%d, %d) = %d, outside [-Pi, Pi]", i, y, x, out)
		}
	}

	if One.Atan() != 51472 { t.Fatalf("atan(1) expected 51472, got %d", One.Atan()) }
	if MaxFixed.Atan() != 102942 { t.Fatalf("atan(MaxFixed) expected 102942, got %d", MaxFixed.Atan()) }
}

func TestAsinAcos(t *testing.T) {
	asin, err := Half.Asin()
	if err != nil || asin != 34314 {
		t.Fatalf("asin(0.5) expected 34314, got %d (%v)", asin, err)
	}

	for value := -One; value <= One; value += 7 {
		asin, err := value.Asin()
		if err != nil { t.Fatalf("asin(%d): unexpected error %s", value, err) }
		if ulpDiff(asin, math.Asin(value.ToFloat64())) > 2 {
			t.Fatalf("asin(%d) = %d, expected %f", value, asin, math.Asin(value.ToFloat64()))
		}
		acos, err := value.Acos()
		if err != nil { t.Fatalf("acos(%d): unexpected error %s", value, err) }
		if ulpDiff(acos, math.Acos(value.ToFloat64())) > 2 {
			t.Fatalf("acos(%d) = %d, expected %f", value, acos, math.Acos(value.ToFloat64()))
		}
	}

	for _, value := range []Fixed{ One + 1, -One - 1, MaxFixed, MinFixed } {
		if _, err := value.Asin(); !errors.Is(err, ErrDomain) {
			t.Fatalf("asin(%d): expected ErrDomain, got %v", value, err)
		}
		if _, err := value.Acos(); !errors.Is(err, ErrDomain) {
			t.Fatalf("acos(%d): expected ErrDomain, got %v", value, err)
		}
	}
}

func TestDegreesRadians(t *testing.T) {
	tests := []struct {
		degrees Fixed
		radians Fixed
	}{
		{0, 0}, {FromInt(180), Pi}, {FromInt(90), HalfPi}, {FromInt(45), 51472},
		{FromInt(-180), -Pi},
	}

	for i, test := range tests {
		radians := test.degrees.ToRadians()
		if radians != test.radians {
			str := "test #%d: ToRadians(%s) expected %d, but got %d"
			t.Fatalf(str, i, test.degrees, test.radians, radians)
		}
	}

	// Pi is not exact, so converting back loses a few units
	degrees := Pi.ToDegrees()
	if degrees < FromInt(180) - 32 || degrees > FromInt(180) + 32 {
		t.Fatalf("Pi.ToDegrees() expected ~180, got %s", degrees)
	}
	if FromInt(1000).ToDegrees() != MaxFixed {
		t.Fatal("ToDegrees(1000) should saturate")
	}
}
