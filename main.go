package main

import "github.com/mj1618/wintree/cmd"

func main() {
	cmd.Execute()
}
