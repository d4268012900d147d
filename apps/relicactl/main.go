package main

import "github.com/zsoltkebel/relica/apps/relicactl/cmd"

func main() {
	cmd.Execute()
}
