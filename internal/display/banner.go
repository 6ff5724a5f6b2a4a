package display

import (
	"fmt"
	"os"

	"github.com/backmassage/bookpost/internal/logging"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if logging.Magenta != "" {
		fmt.Fprint(os.Stdout, logging.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____              _    ____           _
| __ )  ___   ___ | | _|  _ \ ___  ___| |_
|  _ \ / _ \ / _ \| |/ / |_) / _ \/ __| __|
| |_) | (_) | (_) |   <|  __/ (_) \__ \ |_
|____/ \___/ \___/|_|\_\_|   \___/|___/\__|
`)
	if logging.Magenta != "" {
		fmt.Fprintln(os.Stdout, logging.NC)
	}
}
