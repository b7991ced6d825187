package main

import "github.com/kamusis/codex-skills/cmd"

func main() {
	cmd.Execute()
}
