package curl

// Static flag classification tables. Every lookup is a case-sensitive
// exact match; supporting a new alias means adding it to exactly one
// table. The data alias list is ordered so longer spellings match before
// their prefixes.

var methodFlagAliases = []string{"-X", "--request"}

var headerFlagAliases = []string{"-H", "--header"}

var dataFlagAliases = []string{
	"--data-urlencode",
	"--data-binary",
	"--data-raw",
	"--data",
	"-d",
	"--form-string",
	"--form",
	"-F",
}

// valueRequiredFlags lists flags that must consume a following value even
// though they are not method/header/data flags. Keep alphabetically sorted,
// short spellings last.
var valueRequiredFlags = makeSet(
	"--cacert",
	"--cert",
	"--cert-type",
	"--connect-timeout",
	"--cookie",
	"--cookie-jar",
	"--key",
	"--key-type",
	"--limit-rate",
	"--max-time",
	"--output",
	"--proxy",
	"--retry",
	"--retry-delay",
	"--retry-max-time",
	"--trace",
	"--trace-ascii",
	"--user",
	"-o",
	"-u",
	"-x",
)

var (
	methodFlagSet = makeSet(methodFlagAliases...)
	headerFlagSet = makeSet(headerFlagAliases...)
	dataFlagSet   = makeSet(dataFlagAliases...)
)

func makeSet(identifiers ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(identifiers))
	for _, id := range identifiers {
		set[id] = struct{}{}
	}
	return set
}

// IsMethodFlag reports whether the identifier spells a method flag.
func IsMethodFlag(identifier string) bool {
	_, ok := methodFlagSet[identifier]
	return ok
}

// IsHeaderFlag reports whether the identifier spells a header flag.
func IsHeaderFlag(identifier string) bool {
	_, ok := headerFlagSet[identifier]
	return ok
}

// IsDataFlag reports whether the identifier spells a data/payload flag.
func IsDataFlag(identifier string) bool {
	_, ok := dataFlagSet[identifier]
	return ok
}

// ExpectsValue reports whether the identifier belongs to a category whose
// dedicated parser consumes a following value (method, header, or data).
// The generic flag parser refuses these so the dedicated parsers win.
func ExpectsValue(identifier string) bool {
	return IsMethodFlag(identifier) || IsHeaderFlag(identifier) || IsDataFlag(identifier)
}

// RequiresValue reports whether a generic flag must be followed by a value.
func RequiresValue(identifier string) bool {
	_, ok := valueRequiredFlags[identifier]
	return ok
}
