package main

import "github.com/mj1618/window-cycler/cmd"

func main() {
	cmd.Execute()
}
