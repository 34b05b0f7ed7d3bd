// File: tyconf/doc.go

// Package tyconf provides a runtime-validated configuration container for Go
// applications. Every property is declared with a type specification, a
// default value, and optionally a read-only flag or a value validator; the
// declared constraints are enforced on every write for the lifetime of the
// container.
//
// Features:
//   - Type specifications: primitives, generic containers, Optional and Union
//   - Value validators with composable combinators (validators subpackage)
//   - Per-property read-only flags and whole-container freeze/unfreeze
//   - Atomic batch declaration and all-or-nothing Update
//   - Deep-copied defaults, independent Copy, Reset to declared defaults
//   - JSON, TOML and YAML import/export with optional schema
//   - Environment variable and command-line overrides
//   - Struct decoding via mapstructure
//   - Builder pattern for easy initialization
//
// Quick Start:
//
//	cfg, err := tyconf.New(
//	    tyconf.Define("host", tyconf.String, "localhost"),
//	    tyconf.Define("port", tyconf.Int, 8080,
//	        tyconf.WithValidator(validators.Range(1024, 65535))),
//	    tyconf.Define("version", tyconf.String, "1.0.0", tyconf.ReadOnly()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	port, _ := cfg.Int64("port")
//	if err := cfg.Set("port", 3000); err != nil {
//	    log.Fatal(err)
//	}
//
// Mutation errors follow a fixed precedence: frozen > not found > read-only >
// type mismatch > validation. All errors wrap a package sentinel so callers
// can branch with errors.Is.
//
// Concurrency:
// A Config performs no internal locking. Concurrent mutation of a single
// instance is not supported; callers that need shared access should either
// Freeze the instance (a frozen Config is safe for concurrent reads) or hand
// each goroutine its own Copy.
package tyconf
