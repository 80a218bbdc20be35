package models

import "time"

// Comment is a follow-up note attached to a task by its key
type Comment struct {
	ID        int       `json:"id"`
	TaskKey   string    `json:"task_key"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
