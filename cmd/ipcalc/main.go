package main

import "github.com/Flarenzy/ipcalc/internal/cli"

func main() {
	cli.Execute()
}
