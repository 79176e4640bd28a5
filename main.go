package main

import "github.com/josephlewis42/editorcmd/cmd"

func main() {
	cmd.Execute()
}
