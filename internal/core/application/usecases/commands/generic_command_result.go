package commands

import "store/internal/pkg/notification"

// GenericCommandResult is the uniform envelope returned by command handlers.
// On failure Data holds notification.Notifications; on success it holds the
// handler's payload.
type GenericCommandResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func NewSuccessResult(message string, data any) GenericCommandResult {
	return GenericCommandResult{Success: true, Message: message, Data: data}
}

func NewFailureResult(message string, notes notification.Notifications) GenericCommandResult {
	return GenericCommandResult{Success: false, Message: message, Data: notes}
}

// Notifications returns the failure notifications carried in Data, or nil
// when the result succeeded.
func (r GenericCommandResult) Notifications() notification.Notifications {
	notes, _ := r.Data.(notification.Notifications)
	return notes
}
