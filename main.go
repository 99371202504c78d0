package main

import "limeal.fr/vlauncher/cmd"

func main() {
	cmd.Execute()
}
