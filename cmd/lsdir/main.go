package main

import (
	"fmt"
	"os"

	"github.com/temirov/lsdir/internal/cli"
	"github.com/temirov/lsdir/internal/utils"
)

// main is the entry point for the lsdir command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()

	// An unknown working directory leaves relative paths to the operating system.
	workingDirectory, _ := os.Getwd()
	applicationExecutionError := cli.Execute(os.Args[1:], cli.Environment{
		Stdout:           os.Stdout,
		Stderr:           os.Stderr,
		Logger:           loggerInstance,
		WorkingDirectory: workingDirectory,
	})
	if applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
