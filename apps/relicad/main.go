package main

import "github.com/zsoltkebel/relica/apps/relicad/cmd"

func main() {
	cmd.Execute()
}
