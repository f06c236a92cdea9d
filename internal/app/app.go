package app

import (
	"todo/internal/export"
	"todo/internal/models"
	taskservice "todo/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Service layer (business logic)
	TaskService taskservice.Service

	// Exporter renders the collection to a markdown document
	Exporter *export.Exporter
}

// New creates a new App with all services initialized. The initial
// collection is normally the result of Store.Load; a caller recovering from
// a malformed store file passes nil to start empty.
func New(store taskservice.Store, initial []models.Task, exportDir string) *App {
	return &App{
		TaskService: taskservice.NewService(store, initial),
		Exporter:    export.New(exportDir),
	}
}
