package main

import "github.com/user/sub2clip/cmd"

func main() {
	cmd.Execute()
}
