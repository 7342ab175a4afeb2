// File: lixenwraith/getarg/doc.go

// Package getarg turns a raw command line into a queryable key/value store with
// typed lookups. It is a flat extraction layer over POSIX-style "-key" and
// "-key=value" tokens, not a CLI framework: there are no subcommands, no usage
// output and no flag declarations.
//
// Token rules:
//   - Tokens not starting with "-" are ignored (a leading program name is harmless)
//   - "--key" is the same as "-key"
//   - "-key" alone records an empty value, which reads as boolean true
//   - Repeated keys are all kept; string and integer lookups use the last one
//   - "-noKey" is additionally recorded as a negation marker for "-key"
//
// Quick Start:
//
//	args := getarg.New()
//	args.Parse(os.Args[1:])
//
//	verbose := args.GetBool("-verbose", false)
//	name := args.GetString("-name", "default")
//	port := args.GetInt("-port", 8080)
//
// Boolean Precedence (highest to lowest):
//  1. Any positive occurrence of -key ("0" is false, everything else true)
//  2. A -noKey marker ("0" is true, everything else false)
//  3. The supplied default
//
// A positive occurrence beats a negation marker regardless of their order on
// the command line. Lookups never fail: missing keys return the default, and a
// present value that is not an integer reads as 0 from GetInt.
//
// Builder:
//
//	args, err := getarg.NewBuilder().
//	    WithArgs(os.Args[1:]).
//	    WithLogger(logger).
//	    WithRequired("-datadir").
//	    Build()
//
// Thread Safety:
// Parse swaps the whole state under a write lock, so readers never observe a
// partially parsed command line. The package-level functions share one
// process-wide store that should be filled during startup.
package getarg
