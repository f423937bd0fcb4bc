package main

import "edusync/cmd/edusync-cli/cmd"

func main() {
	cmd.Execute()
}
