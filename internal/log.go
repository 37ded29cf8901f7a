package internal

import (
	"fmt"

	"github.com/mitchellh/colorstring"
)

// NO_COLOR is a global variable that is used to determine whether or not to enable color output.
var NO_COLOR bool = false

// Log prints the message in the given color, or plain when NO_COLOR is set.
func Log(color, message string) {
	fmt.Println(colorize(color, message))
}

// colorize wraps the message in the color's escape codes. The message itself is
// never parsed for color codes, phase labels like [FCC_A1] are printed as is.
func colorize(color, message string) string {
	if _, ok := colorstring.DefaultColors[color]; NO_COLOR || !ok {
		return message
	}
	c := colorstring.Colorize{Colors: colorstring.DefaultColors}
	return c.Color("["+color+"]") + message + c.Color("[reset]")
}
