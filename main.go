package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Zuggy22/Alke-wallet/di"
	"github.com/Zuggy22/Alke-wallet/menu"
)

func main() {
	ctx := context.Background()

	app, err := di.Build(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
	if app.Pool != nil {
		defer app.Pool.Close()
	}

	menu.Run(ctx, app.Menu, &app.Deps)
}
