package main

import "loja-service/internal/cmd"

func main() {
	cmd.Execute()
}
