package main

import "github.com/AhnafulH/unix-shell/cmd"

func main() {
	cmd.Execute()
}
