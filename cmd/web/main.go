package main

import "expensetracker_backend/internal/app"

func main() {
	app.Run()
}
