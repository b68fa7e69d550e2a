package main

import "github.com/khoahotran/professional-ladder/internal/cli"

func main() {
	cli.Execute()
}
