package main

import (
	"github.com/rios0rios0/submissiontrigger/internal"
	"github.com/rios0rios0/submissiontrigger/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

func injectTriggerController() *controllers.TriggerController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var triggerController *controllers.TriggerController
	if err := container.Invoke(func(tc *controllers.TriggerController) {
		triggerController = tc
	}); err != nil {
		panic(err)
	}

	return triggerController
}
