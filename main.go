package main

import "github.com/goshrc/gosh/cmd"

func main() {
	cmd.Execute()
}
