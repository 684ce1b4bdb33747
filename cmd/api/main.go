// @title pet-records API
// @version 1.0
// @description Registros de gatos y perros: alta, búsqueda y actualización del último registro.
// @BasePath /
package main

import (
	"fmt"
	"os"

	"pet-records/internal/platform/config"

	"github.com/jessevdk/go-flags"
)

const appName = "pet-records"

// Config es la configuración global (flags + env).
var Config = new(config.Config)

func main() {
	parser := flags.NewParser(Config, flags.Default)

	_, _ = parser.AddCommand("serve", "Serve the pet-records HTTP API", `
Serve the HTML pages and the JSON API until SIGINT/SIGTERM. The document store
is selected with --store.driver (memory, postgres or sqlite).
`, &cmdServe{})

	_, _ = parser.AddCommand("list", "List records from a running server", `
Fetch every cat or dog from a running pet-records server and print them as a table.
`, &cmdList{})

	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		// flags.Default ya imprimió los errores de parseo; los de Execute no.
		if _, ok := err.(*flags.Error); !ok {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
