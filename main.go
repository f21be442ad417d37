package main

import "github/chapool/go-hdgen/cmd"

func main() {
	cmd.Execute()
}
