package query

// DefaultDelimiter separates multi-valued output when none is configured
const DefaultDelimiter = "\n"

// symbolic delimiter names, matched case-sensitively
var namedDelimiters = map[string]string{
	"Tab":  "\t",
	"CR":   "\r",
	"LF":   "\n",
	"CRLF": "\r\n",
}

// ParseDelimiter maps a symbolic name to its character sequence.
// Any other value, including "", is used verbatim.
func ParseDelimiter(s string) string {
	if d, ok := namedDelimiters[s]; ok {
		return d
	}
	return s
}
