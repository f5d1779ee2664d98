package main

import "github.com/davitran/audioscribe/internal/cli"

func main() {
	cli.Execute()
}
