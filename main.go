package main

import (
	"paacman_go/cmd"
)

// Main controller
func main() {
	cmd.Execute() // initialize cobra commands
}
