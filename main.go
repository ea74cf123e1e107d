package main

import "github.com/Bezhaltur/Auto-DCA-bot/cmd"

func main() {
	cmd.Execute()
}
