package main

import "github.com/philipparndt/go4dof/internal/cmd"

func main() {
	cmd.Parse()
}
