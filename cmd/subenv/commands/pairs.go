package commands

import (
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"go.trai.ch/subenv/internal/core/domain"
	"go.trai.ch/zerr"
)

// pairSep joins the two values of a folded pair flag. NUL cannot occur in
// command line arguments.
const pairSep = "\x00"

// pairType is the pflag type name of two-valued flags.
const pairType = "pair"

// foldPairs rewrites "--flag A B" into "--flag=A\x00B" for every two-valued
// flag in flags, so pflag sees a single value. Short clusters ending in a
// two-valued shorthand fold the same way ("-ne A B" becomes "-ne=A\x00B").
// Folding stops at "--" or at the first positional argument, which starts the
// sandboxed command.
func foldPairs(flags *pflag.FlagSet, args []string) ([]string, error) {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" || !strings.HasPrefix(arg, "-") || arg == "-" {
			return append(out, args[i:]...), nil
		}

		name, flag, inline, hasInline := lookupArg(flags, arg)

		switch {
		case flag == nil:
			out = append(out, arg)
		case flag.Value.Type() == pairType:
			var first string
			need := 2
			if hasInline {
				first, need = inline, 1
			}
			if i+need >= len(args) {
				return nil, zerr.With(domain.ErrInvalidFlagPair, "flag", name)
			}
			if !hasInline {
				first = args[i+1]
			}
			second := args[i+need]
			out = append(out, name+"="+first+pairSep+second)
			i += need
		case flag.NoOptDefVal == "" && !hasInline:
			out = append(out, arg)
			if i+1 < len(args) {
				out = append(out, args[i+1])
				i++
			}
		default:
			out = append(out, arg)
		}
	}

	return out, nil
}

// lookupArg finds the flag in arg that may consume the following arguments.
// For a short cluster that is the first shorthand that is not a boolean; name
// is then arg up to and including it. Unknown flags yield a nil flag.
func lookupArg(flags *pflag.FlagSet, arg string) (name string, flag *pflag.Flag, inline string, hasInline bool) {
	if strings.HasPrefix(arg, "--") {
		long, value, ok := strings.Cut(arg[2:], "=")
		return "--" + long, flags.Lookup(long), value, ok
	}

	for j := 1; j < len(arg); j++ {
		c := arg[j]
		if c >= utf8.RuneSelf {
			return arg, nil, "", false
		}
		f := flags.ShorthandLookup(string(c))
		if f == nil {
			return arg, nil, "", false
		}
		if f.NoOptDefVal != "" {
			continue
		}
		rest := arg[j+1:]
		if rest == "" {
			return arg, f, "", false
		}
		return arg[:j+1], f, strings.TrimPrefix(rest, "="), true
	}

	// Only booleans.
	return arg, nil, "", false
}

// pair is one folded two-valued flag occurrence.
type pair struct {
	first, second string
}

// pairList is a repeatable pflag.Value collecting folded pairs.
type pairList struct {
	pairs *[]pair
}

var _ pflag.Value = pairList{}

func (p pairList) String() string {
	parts := make([]string, len(*p.pairs))
	for i, v := range *p.pairs {
		parts[i] = v.first + " " + v.second
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (p pairList) Set(value string) error {
	first, second, ok := strings.Cut(value, pairSep)
	if !ok {
		return zerr.With(domain.ErrInvalidFlagPair, "value", value)
	}
	*p.pairs = append(*p.pairs, pair{first: first, second: second})
	return nil
}

func (p pairList) Type() string {
	return pairType
}
