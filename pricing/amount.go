package pricing

import "fmt"

// Amount is a currency value in minor units (cents).
type Amount int64

// FromMajor converts whole currency units to an Amount.
func FromMajor(units int64) Amount { return Amount(units * 100) }

// MinorUnits returns the integer value persisted with a booking.
func (a Amount) MinorUnits() int64 { return int64(a) }

// Major returns the value in currency units, for display only.
func (a Amount) Major() float64 { return float64(a) / 100 }

func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign, v = "-", -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// percentOf returns rate percent of a, rounded half up to the nearest minor unit.
func percentOf(a Amount, rate int) Amount {
	return Amount((int64(a)*int64(rate) + 50) / 100)
}
