package main

import "github.com/Rorical/ZenPad/cmd"

func main() {
	cmd.Execute()
}
