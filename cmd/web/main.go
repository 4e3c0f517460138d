package main

import "staynest/internal/app"

func main() {
	app.Run()
}
