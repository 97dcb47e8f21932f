// Package safe provides helpers for numeric conversions and arithmetic with overflow checks.
package safe

import (
	"fmt"
	"math"
	"math/big"
)

// BigUint64 converts a big integer to uint64 with range validation.
func BigUint64(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, fmt.Errorf("nil value")
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("value %s out of uint64 range", v)
	}
	return v.Uint64(), nil
}

// Add returns a+b, failing instead of wrapping around.
func Add(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, fmt.Errorf("%d + %d overflows uint64", a, b)
	}
	return a + b, nil
}

// Sum adds all values, failing instead of wrapping around.
func Sum(values ...uint64) (uint64, error) {
	var total uint64
	for _, v := range values {
		next, err := Add(total, v)
		if err != nil {
			return 0, err
		}
		total = next
	}
	return total, nil
}

// Int64 converts an unsigned value to int64 with range validation.
func Int64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}
