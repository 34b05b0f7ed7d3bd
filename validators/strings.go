// File: tyconf/validators/strings.go
package validators

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/barabasz/tyconf"
)

// Length accepts strings and collections whose length falls within
// [minLen, maxLen], bounds inclusive. Use MinLength or MaxLength when only
// one bound applies.
func Length(minLen, maxLen int) tyconf.Validator {
	return func(value any) error {
		n, err := lengthOf(value)
		if err != nil {
			return err
		}
		if n < minLen {
			return fmt.Errorf("length must be >= %d", minLen)
		}
		if n > maxLen {
			return fmt.Errorf("length must be <= %d", maxLen)
		}
		return nil
	}
}

// MinLength accepts values with at least minLen elements.
func MinLength(minLen int) tyconf.Validator {
	return func(value any) error {
		n, err := lengthOf(value)
		if err != nil {
			return err
		}
		if n < minLen {
			return fmt.Errorf("length must be >= %d", minLen)
		}
		return nil
	}
}

// MaxLength accepts values with at most maxLen elements.
func MaxLength(maxLen int) tyconf.Validator {
	return func(value any) error {
		n, err := lengthOf(value)
		if err != nil {
			return err
		}
		if n > maxLen {
			return fmt.Errorf("length must be <= %d", maxLen)
		}
		return nil
	}
}

// Contains accepts strings that contain substring.
func Contains(substring string, caseSensitive bool) tyconf.Validator {
	return func(value any) error {
		s, err := asString(value)
		if err != nil {
			return err
		}
		val, sub := s, substring
		if !caseSensitive {
			val, sub = strings.ToLower(s), strings.ToLower(substring)
		}
		if !strings.Contains(val, sub) {
			msg := fmt.Sprintf("must contain %q", substring)
			if !caseSensitive {
				msg += " (case insensitive)"
			}
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}

// HasPrefix accepts strings starting with prefix.
func HasPrefix(prefix string) tyconf.Validator {
	return func(value any) error {
		s, err := asString(value)
		if err != nil {
			return err
		}
		if !strings.HasPrefix(s, prefix) {
			return fmt.Errorf("must start with %q", prefix)
		}
		return nil
	}
}

// HasSuffix accepts strings ending with suffix.
func HasSuffix(suffix string) tyconf.Validator {
	return func(value any) error {
		s, err := asString(value)
		if err != nil {
			return err
		}
		if !strings.HasSuffix(s, suffix) {
			return fmt.Errorf("must end with %q", suffix)
		}
		return nil
	}
}

// Match accepts strings matching the regular expression pattern. The
// pattern is compiled once at construction; an invalid pattern produces a
// validator that rejects every value with the compile error.
func Match(pattern string) tyconf.Validator {
	re, compileErr := regexp.Compile(pattern)
	return func(value any) error {
		if compileErr != nil {
			return fmt.Errorf("invalid pattern %q: %v", pattern, compileErr)
		}
		s, err := asString(value)
		if err != nil {
			return err
		}
		if !re.MatchString(s) {
			return fmt.Errorf("must match pattern %s", pattern)
		}
		return nil
	}
}

// Alpha accepts strings of letters only.
func Alpha() tyconf.Validator {
	return charClass("must contain only alphabetic characters", unicode.IsLetter)
}

// Alphanumeric accepts strings of letters and digits only.
func Alphanumeric() tyconf.Validator {
	return charClass("must contain only alphanumeric characters", func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

// Numeric accepts strings of digits only.
func Numeric() tyconf.Validator {
	return charClass("must contain only numeric characters", unicode.IsDigit)
}

// Lowercase rejects strings containing uppercase letters.
func Lowercase() tyconf.Validator {
	return func(value any) error {
		s, err := asString(value)
		if err != nil {
			return err
		}
		if s != strings.ToLower(s) {
			return fmt.Errorf("must be lowercase")
		}
		return nil
	}
}

// Uppercase rejects strings containing lowercase letters.
func Uppercase() tyconf.Validator {
	return func(value any) error {
		s, err := asString(value)
		if err != nil {
			return err
		}
		if s != strings.ToUpper(s) {
			return fmt.Errorf("must be uppercase")
		}
		return nil
	}
}

// NoWhitespace rejects strings containing any whitespace character. Useful
// for usernames, tokens and identifiers.
func NoWhitespace() tyconf.Validator {
	return func(value any) error {
		s, err := asString(value)
		if err != nil {
			return err
		}
		if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
			return fmt.Errorf("must not contain whitespace")
		}
		return nil
	}
}

// charClass builds a validator accepting non-empty strings whose runes all
// satisfy ok.
func charClass(msg string, ok func(rune) bool) tyconf.Validator {
	return func(value any) error {
		s, err := asString(value)
		if err != nil {
			return err
		}
		if s == "" {
			return fmt.Errorf("%s", msg)
		}
		for _, r := range s {
			if !ok(r) {
				return fmt.Errorf("%s", msg)
			}
		}
		return nil
	}
}
