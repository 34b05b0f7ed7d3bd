// File: tyconf/validators/paths.go
package validators

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/barabasz/tyconf"
)

// URLScheme accepts URL strings whose scheme is in the allowed set.
func URLScheme(schemes ...string) tyconf.Validator {
	return func(value any) error {
		s, err := asString(value)
		if err != nil {
			return err
		}
		parsed, perr := url.Parse(s)
		if perr != nil {
			return fmt.Errorf("must be a valid URL: %v", perr)
		}
		for _, scheme := range schemes {
			if parsed.Scheme == scheme {
				return nil
			}
		}
		return fmt.Errorf("URL scheme must be one of %v, got %q", schemes, parsed.Scheme)
	}
}

// ValidURL accepts strings parsing as a URL with both scheme and host.
func ValidURL() tyconf.Validator {
	return func(value any) error {
		s, err := asString(value)
		if err != nil {
			return err
		}
		parsed, perr := url.Parse(s)
		if perr != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("must be a valid URL with scheme and domain")
		}
		return nil
	}
}

// PathExists accepts paths of existing files or directories.
func PathExists() tyconf.Validator {
	return func(value any) error {
		s, err := asString(value)
		if err != nil {
			return err
		}
		if _, serr := os.Stat(s); serr != nil {
			return fmt.Errorf("path does not exist: %s", s)
		}
		return nil
	}
}

// IsFile accepts paths of existing regular files.
func IsFile() tyconf.Validator {
	return func(value any) error {
		s, err := asString(value)
		if err != nil {
			return err
		}
		stat, serr := os.Stat(s)
		if serr != nil || stat.IsDir() {
			return fmt.Errorf("not a file: %s", s)
		}
		return nil
	}
}

// IsDirectory accepts paths of existing directories.
func IsDirectory() tyconf.Validator {
	return func(value any) error {
		s, err := asString(value)
		if err != nil {
			return err
		}
		stat, serr := os.Stat(s)
		if serr != nil || !stat.IsDir() {
			return fmt.Errorf("not a directory: %s", s)
		}
		return nil
	}
}

// AbsolutePath accepts absolute paths.
func AbsolutePath() tyconf.Validator {
	return func(value any) error {
		s, err := asString(value)
		if err != nil {
			return err
		}
		if !filepath.IsAbs(s) {
			return fmt.Errorf("path must be absolute")
		}
		return nil
	}
}

// RelativePath accepts relative paths.
func RelativePath() tyconf.Validator {
	return func(value any) error {
		s, err := asString(value)
		if err != nil {
			return err
		}
		if filepath.IsAbs(s) {
			return fmt.Errorf("path must be relative")
		}
		return nil
	}
}

// FileExtension accepts file paths whose extension is in the allowed set.
// Extensions may be given with or without the leading dot.
func FileExtension(extensions ...string) tyconf.Validator {
	normalized := make([]string, len(extensions))
	for i, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized[i] = ext
	}
	return func(value any) error {
		s, err := asString(value)
		if err != nil {
			return err
		}
		suffix := filepath.Ext(s)
		for _, ext := range normalized {
			if suffix == ext {
				return nil
			}
		}
		return fmt.Errorf("file extension must be one of %v", normalized)
	}
}
