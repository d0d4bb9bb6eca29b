package main

import "github.com/yaoapp/emitter/cmd"

func main() {
	cmd.Execute()
}
