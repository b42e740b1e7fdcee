package sanitize

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// UserInputString is used to strip value of any \r \n to
// avoiding log injection / CWE-117
func UserInputString(key string, value string) zapcore.Field {
	return zap.String(key, NoLineBreaks(value))
}

// NoLineBreaks removes linebreaks and carrage returns from string
func NoLineBreaks(value string) string {
	esc := strings.ReplaceAll(value, "\n", "")
	esc = strings.ReplaceAll(esc, "\r", "")
	return esc
}

var (
	cssIdentifierReplacer = strings.NewReplacer(" ", "-", "_", "-", "/", "-", "[", "-", "]", "")
	cssInvalidChars       = regexp.MustCompile(`[^\x{002D}\x{0030}-\x{0039}\x{0041}-\x{005A}\x{005F}\x{0061}-\x{007A}\x{00A1}-\x{FFFF}]`)
	cssLeadingDigit       = regexp.MustCompile(`^[0-9]`)
	cssLeadingHyphen      = regexp.MustCompile(`^(-[0-9])|^(--)`)
)

// CleanCSSIdentifier turns an arbitrary string into a valid css identifier,
// double underscores survive, leading digits and double hyphens are escaped
func CleanCSSIdentifier(identifier string) string {
	const placeholder = "##"
	identifier = strings.ReplaceAll(identifier, "__", placeholder)
	identifier = cssIdentifierReplacer.Replace(identifier)
	identifier = strings.ReplaceAll(identifier, placeholder, "__")
	identifier = cssInvalidChars.ReplaceAllString(identifier, "")
	identifier = cssLeadingDigit.ReplaceAllString(identifier, "_")
	identifier = cssLeadingHyphen.ReplaceAllString(identifier, "__")
	return identifier
}
