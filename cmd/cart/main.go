package main

import "github.com/cherryprincess/shopping-cart-APP/cli"

func main() {
	cli.Execute()
}
