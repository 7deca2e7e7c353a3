package main

import "github.com/sportarb/oddsarb/cmd"

func main() {
	cmd.Execute()
}
