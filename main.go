package main

import "github.com/maxkimambo/diskpress/cmd"

func main() {
	cmd.Execute()
}
