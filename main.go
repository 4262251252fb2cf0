package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sangtae/appicon/internal/app"
)

func main() {
	a := app.New()

	if err := a.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "icon write error:", err)
		os.Exit(1)
	}

	fmt.Println("Generated 'Chevron Up' icon.")
}
