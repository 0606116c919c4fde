package main

import "github.com/curaious/taskdeck/cmd"

func main() {
	cmd.Execute()
}
