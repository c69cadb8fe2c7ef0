package main

import "os"

func main() {
	os.Exit(HandleExitError(os.Stderr, RunApp(os.Args)))
}
