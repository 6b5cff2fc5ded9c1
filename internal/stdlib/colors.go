package stdlib

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rx-lang/rx/internal/interp"
	"github.com/rx-lang/rx/internal/rxerr"
	"github.com/rx-lang/rx/internal/token"
)

// fatihAttrs maps rx's color names (interp.ColorNames) onto
// github.com/fatih/color attributes, used by colorize() so the
// `colors` library gets real terminal-capability-aware rendering
// (NO_COLOR, non-tty stdout, Windows consoles) on top of the raw ANSI
// table internal/interp uses for `c@color"..."` literals.
var fatihAttrs = map[string]color.Attribute{
	"black":          color.FgBlack,
	"red":            color.FgRed,
	"green":          color.FgGreen,
	"yellow":         color.FgYellow,
	"blue":           color.FgBlue,
	"magenta":        color.FgMagenta,
	"cyan":           color.FgCyan,
	"white":          color.FgWhite,
	"bright_black":   color.FgHiBlack,
	"bright_red":     color.FgHiRed,
	"bright_green":   color.FgHiGreen,
	"bright_yellow":  color.FgHiYellow,
	"bright_blue":    color.FgHiBlue,
	"bright_magenta": color.FgHiMagenta,
	"bright_cyan":    color.FgHiCyan,
	"bright_white":   color.FgHiWhite,
}

// Colors builds the `colors` library: colorize, list_colors, and
// supports_color, per spec.md §4.3.6. list_colors writes through the
// Interpreter's configured output rather than os.Stdout directly, the
// same convention the system library's print() follows.
func Colors(rt *interp.Interpreter) interp.Library {
	funcs := map[string]interp.NativeFunc{
		"colorize": func(args []interp.Value) (interp.Value, error) {
			if len(args) != 2 {
				return interp.Value{}, rxerr.ArityMismatch(token.Position{}, "colorize", 2, len(args))
			}
			name := args[0].ToString()
			text := args[1].ToString()
			if attr, ok := fatihAttrs[name]; ok {
				return interp.String(color.New(attr).Sprint(text)), nil
			}
			code, ok := interp.ColorCode(name)
			if !ok {
				return interp.String(text + interp.ResetCode), nil
			}
			return interp.String(code + text + interp.ResetCode), nil
		},

		"list_colors": func(args []interp.Value) (interp.Value, error) {
			if len(args) != 0 {
				return interp.Value{}, rxerr.ArityMismatch(token.Position{}, "list_colors", 0, len(args))
			}
			fmt.Fprintln(rt.Output(), strings.Join(interp.ColorNames(), ", "))
			return interp.Number(0), nil
		},

		"supports_color": func(args []interp.Value) (interp.Value, error) {
			if len(args) != 0 {
				return interp.Value{}, rxerr.ArityMismatch(token.Position{}, "supports_color", 0, len(args))
			}
			if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return interp.Number(1), nil
			}
			return interp.Number(0), nil
		},
	}
	return interp.NewLibrary("colors", funcs)
}
