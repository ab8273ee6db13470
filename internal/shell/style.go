package shell

// Heading decorates a section heading for the active theme. The dark
// flag is the only styling signal views receive; everything else about
// a view's output is theme-independent.
func Heading(s string, dark bool) string {
	if dark {
		return "\x1b[1;97m" + s + "\x1b[0m"
	}
	return "\x1b[1;30m" + s + "\x1b[0m"
}
