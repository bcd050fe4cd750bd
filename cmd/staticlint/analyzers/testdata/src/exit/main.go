package main

import "os"

func main() {
	defer cleanup()
	os.Exit(1) // want "прямой вызов os.Exit в функции main запрещен"
}

func cleanup() {
	os.Exit(0)
}
