package main

import (
	"github.com/YashSharma412/Todo-app-full-stack-ejs/app"
	_ "github.com/YashSharma412/Todo-app-full-stack-ejs/docs"
)

func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}
