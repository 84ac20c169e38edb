package main

import "conference-hub/cmd"

func main() {
	cmd.Execute()
}
