package main

import "github.com/tommygaessler/angular/internal/cli"

func main() {
	cli.Execute()
}
