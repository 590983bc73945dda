package render

import (
	"regexp"
	"strings"
)

// ansiCode matches a color sequence either in full or with the escape byte
// stripped, which happens when output passes through transports that eat the
// ESC character and leave a literal "[ XXm" behind.
var ansiCode = regexp.MustCompile(`(?:\x1b\[|\[ *)(\d+)m`)

var ansiClasses = map[string]string{
	"30": "text-black",
	"31": "text-red",
	"32": "text-green",
	"33": "text-yellow",
	"34": "text-blue",
	"35": "text-magenta",
	"36": "text-cyan",
	"37": "text-white",
	"90": "text-gray",
	"91": "text-bright-red",
	"92": "text-bright-green",
	"93": "text-bright-yellow",
	"94": "text-bright-blue",
	"95": "text-bright-magenta",
	"96": "text-bright-cyan",
	"97": "text-bright-white",
}

var multiSpace = regexp.MustCompile(`  +`)

// HTML converts ANSI-colored terminal output into browser markup: color
// sequences become class-tagged spans, newlines become <br>, and runs of
// spaces are preserved with &nbsp;.
func HTML(text string) string {
	text = ansiCode.ReplaceAllStringFunc(text, func(m string) string {
		code := ansiCode.FindStringSubmatch(m)[1]
		switch code {
		case "0", "39", "49":
			return "</span>"
		}
		if class, ok := ansiClasses[code]; ok {
			return `<span class="` + class + `">`
		}
		return ""
	})

	text = multiSpace.ReplaceAllStringFunc(text, func(m string) string {
		return strings.Repeat("&nbsp;", len(m))
	})
	return strings.ReplaceAll(text, "\n", "<br>")
}
