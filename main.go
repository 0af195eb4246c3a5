package main

import "github.com/manfredlotz/rcronic/cmd"

func main() {
	cmd.Execute()
}
