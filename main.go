package main

import "github.com/KaramelBytes/costview-cli/cmd"

func main() {
	cmd.Execute()
}
