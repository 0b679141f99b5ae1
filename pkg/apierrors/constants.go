package apierrors

// Message keys resolved through pkg/translator. Keys double as the stable
// fallback text when a translation bundle is missing.
const (
	MsgInvalidRequest     = "invalidRequest"
	MsgInvalidCredentials = "invalidCredentials"
	MsgEmailExists        = "emailAlreadyExists"
	MsgAuthRequired       = "authenticationRequired"
	MsgTaskNotFound       = "taskNotFound"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidTaskStatus  = "invalidTaskStatus"
	MsgDueDateInPast      = "dueDateInPast"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailListTasks      = "failListTasks"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgTooManyRequests    = "tooManyRequests"
	MsgInternalError      = "internalError"
)
