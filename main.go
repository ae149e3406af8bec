package main

import cmd "github.com/Geun-Oh/dstat/cmd/dstat"

func main() {
	cmd.Execute()
}
