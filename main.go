package main

import "github.com/jfox85/rsinit/cmd"

func main() {
	cmd.Execute()
}
