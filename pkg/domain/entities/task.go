package entities

// Task is a unit of background work handed to the task manager.
type Task func()
