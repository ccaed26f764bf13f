package main

import "quickmart/pos/internal/app"

func main() {
	app.Run()
}
