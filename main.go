package main

import (
	"os"

	"github.com/GoVisitorDash/GoVisitorDash/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
