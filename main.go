package main

import "a_notes_go/cmd"

func main() {
	cmd.Execute()
}
