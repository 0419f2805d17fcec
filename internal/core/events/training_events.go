package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeUserRegistered     = "user.registered"
	EventTypeCompletionRecorded = "completion.recorded"
)

type UserRegisteredEvent struct {
	BaseEvent
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func NewUserRegisteredEvent(userID, username, role string) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeUserRegistered,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"user_id":  userID,
				"username": username,
				"role":     role,
			},
		},
		UserID:   userID,
		Username: username,
		Role:     role,
	}
}

type CompletionRecordedEvent struct {
	BaseEvent
	CompletionID string `json:"completion_id"`
	EmployeeID   string `json:"employee_id"`
	ToolboxID    string `json:"toolbox_id"`
	RecordedBy   string `json:"recorded_by"`
}

func NewCompletionRecordedEvent(completionID, employeeID, toolboxID, recordedBy string) *CompletionRecordedEvent {
	return &CompletionRecordedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeCompletionRecorded,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"completion_id": completionID,
				"employee_id":   employeeID,
				"toolbox_id":    toolboxID,
				"recorded_by":   recordedBy,
			},
		},
		CompletionID: completionID,
		EmployeeID:   employeeID,
		ToolboxID:    toolboxID,
		RecordedBy:   recordedBy,
	}
}
