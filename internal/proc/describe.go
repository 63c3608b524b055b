package proc

import "strings"

const maxDescription = 50

var scriptSuffixes = []string{".py", ".js", ".ts", ".sh", ".rb"}

// Describe derives a short description from a command-line vector,
// ignoring the executable token. The first non-flag argument that looks
// like a file path wins, reduced to its last three path components.
// Otherwise the non-flag arguments are joined and truncated.
func Describe(cmdline []string) string {
	if len(cmdline) < 2 {
		return ""
	}

	var plain []string
	for _, arg := range cmdline[1:] {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if strings.ContainsRune(arg, '/') || hasScriptSuffix(arg) {
			return lastPathComponents(arg, 3)
		}
		plain = append(plain, arg)
	}

	joined := strings.Join(plain, " ")
	if runes := []rune(joined); len(runes) > maxDescription {
		joined = string(runes[:maxDescription])
	}
	return joined
}

func hasScriptSuffix(arg string) bool {
	for _, suffix := range scriptSuffixes {
		if strings.HasSuffix(arg, suffix) {
			return true
		}
	}
	return false
}

// lastPathComponents reduces a path to its n trailing components joined
// with "/". Shorter paths come back unchanged.
func lastPathComponents(path string, n int) string {
	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(parts) < n {
		return path
	}
	return strings.Join(parts[len(parts)-n:], "/")
}
