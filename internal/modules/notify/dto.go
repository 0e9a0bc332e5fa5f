package notify

import "time"

// Event is a real-time event pushed to clients.
type Event struct {
	Type      string    `json:"type"`
	ProjectID string    `json:"project_id,omitempty"`
	TaskID    string    `json:"task_id,omitempty"`
	Title     string    `json:"title,omitempty"`
	Status    string    `json:"status,omitempty"`
	ActorID   string    `json:"actor_id,omitempty"`
	ActorName string    `json:"actor_name,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewTaskCreatedEvent(projectID, taskID, title, actorID string) Event {
	return Event{
		Type:      "task_created",
		ProjectID: projectID,
		TaskID:    taskID,
		Title:     title,
		ActorID:   actorID,
		Timestamp: time.Now(),
	}
}

func NewTaskStatusEvent(projectID, taskID, status, actorID string) Event {
	return Event{
		Type:      "task_status",
		ProjectID: projectID,
		TaskID:    taskID,
		Status:    status,
		ActorID:   actorID,
		Timestamp: time.Now(),
	}
}

func NewTaskDeletedEvent(projectID, taskID, actorID string) Event {
	return Event{
		Type:      "task_deleted",
		ProjectID: projectID,
		TaskID:    taskID,
		ActorID:   actorID,
		Timestamp: time.Now(),
	}
}

func NewCommentEvent(taskID, actorID, actorName string) Event {
	return Event{
		Type:      "comment_added",
		TaskID:    taskID,
		ActorID:   actorID,
		ActorName: actorName,
		Timestamp: time.Now(),
	}
}

func NewPongEvent() Event {
	return Event{Type: "pong", Timestamp: time.Now()}
}
