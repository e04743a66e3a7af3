package main

import "github.com/ademuri/album-club-tools/cmd"

func main() {
	cmd.Execute()
}
