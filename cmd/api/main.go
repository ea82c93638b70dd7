// @title Pet Store API
// @version 1.0
// @description API de demo que genera mascotas aleatorias.
// @BasePath /
package main

import (
	"context"
	"fmt"
	"os"

	"pet-store-api/internal/cli"
)

func main() {
	if err := cli.Command().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
