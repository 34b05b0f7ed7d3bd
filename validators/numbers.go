// File: tyconf/validators/numbers.go
package validators

import (
	"fmt"

	"github.com/barabasz/tyconf"
)

// Range accepts numbers within [min, max], bounds inclusive. Use Min or Max
// when only one bound applies.
func Range(min, max float64) tyconf.Validator {
	return func(value any) error {
		n, err := asNumber(value)
		if err != nil {
			return err
		}
		if n < min {
			return fmt.Errorf("must be >= %v", min)
		}
		if n > max {
			return fmt.Errorf("must be <= %v", max)
		}
		return nil
	}
}

// Min accepts numbers greater than or equal to the bound.
func Min(bound float64) tyconf.Validator {
	return func(value any) error {
		n, err := asNumber(value)
		if err != nil {
			return err
		}
		if n < bound {
			return fmt.Errorf("must be >= %v", bound)
		}
		return nil
	}
}

// Max accepts numbers less than or equal to the bound.
func Max(bound float64) tyconf.Validator {
	return func(value any) error {
		n, err := asNumber(value)
		if err != nil {
			return err
		}
		if n > bound {
			return fmt.Errorf("must be <= %v", bound)
		}
		return nil
	}
}

// Between accepts numbers between min and max. With inclusive the bounds
// themselves are accepted.
func Between(min, max float64, inclusive bool) tyconf.Validator {
	return func(value any) error {
		n, err := asNumber(value)
		if err != nil {
			return err
		}
		if inclusive {
			if n < min || n > max {
				return fmt.Errorf("must be between %v and %v (inclusive)", min, max)
			}
			return nil
		}
		if n <= min || n >= max {
			return fmt.Errorf("must be between %v and %v (exclusive)", min, max)
		}
		return nil
	}
}

// Positive accepts numbers greater than zero.
func Positive() tyconf.Validator {
	return func(value any) error {
		n, err := asNumber(value)
		if err != nil {
			return err
		}
		if n <= 0 {
			return fmt.Errorf("must be positive (> 0)")
		}
		return nil
	}
}

// Negative accepts numbers less than zero.
func Negative() tyconf.Validator {
	return func(value any) error {
		n, err := asNumber(value)
		if err != nil {
			return err
		}
		if n >= 0 {
			return fmt.Errorf("must be negative (< 0)")
		}
		return nil
	}
}

// NonNegative accepts zero and positive numbers.
func NonNegative() tyconf.Validator {
	return func(value any) error {
		n, err := asNumber(value)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("must be non-negative (>= 0)")
		}
		return nil
	}
}

// NonPositive accepts zero and negative numbers.
func NonPositive() tyconf.Validator {
	return func(value any) error {
		n, err := asNumber(value)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("must be non-positive (<= 0)")
		}
		return nil
	}
}

// DivisibleBy accepts integers evenly divisible by divisor. A zero divisor
// rejects every value rather than dividing by zero.
func DivisibleBy(divisor int64) tyconf.Validator {
	return func(value any) error {
		if divisor == 0 {
			return fmt.Errorf("divisor must not be zero")
		}
		i, err := asInteger(value)
		if err != nil {
			return err
		}
		if i%divisor != 0 {
			return fmt.Errorf("must be divisible by %d", divisor)
		}
		return nil
	}
}

// Even accepts even integers.
func Even() tyconf.Validator {
	return func(value any) error {
		i, err := asInteger(value)
		if err != nil {
			return err
		}
		if i%2 != 0 {
			return fmt.Errorf("must be even")
		}
		return nil
	}
}

// Odd accepts odd integers.
func Odd() tyconf.Validator {
	return func(value any) error {
		i, err := asInteger(value)
		if err != nil {
			return err
		}
		if i%2 == 0 {
			return fmt.Errorf("must be odd")
		}
		return nil
	}
}
