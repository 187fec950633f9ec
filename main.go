package main

import "github.com/samhoang/micbot/cmd"

func main() {
	cmd.Execute()
}
