package main

import "github.com/reagentic/reagent/cmd"

func main() {
	cmd.Execute()
}
