package main

import "github.com/ppiankov/hedgegate/internal/cli"

func main() {
	cli.Execute()
}
