package main

import "github.com/flarewatch/flarewatch/cmd"

func main() {
	cmd.Execute()
}
