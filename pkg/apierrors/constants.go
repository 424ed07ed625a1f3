package apierrors

const (
	MsgUnauthorized          = "unauthorized"
	MsgInvalidTaskID         = "invalidTaskID"
	MsgInvalidTaskPayload    = "invalidTaskPayload"
	MsgTaskNotFound          = "taskNotFound"
	MsgFailListTask          = "errorListTask"
	MsgFailGetTask           = "failGetTask"
	MsgFailCreateTask        = "failCreateTask"
	MsgFailUpdateTask        = "failUpdateTask"
	MsgFailDeleteTask        = "failDeleteTask"
	MsgInvalidCommentPayload = "invalidCommentPayload"
	MsgFailListComments      = "failListComments"
	MsgFailCreateComment     = "failCreateComment"
	MsgFailUnreadCount       = "failUnreadCount"
	MsgInvalidActivityQuery  = "invalidActivityQuery"
	MsgInvalidActivity       = "invalidActivityPayload"
	MsgFailListActivities    = "failListActivities"
	MsgFailRecordActivity    = "failRecordActivity"
	MsgFailActivityStats     = "failActivityStats"
	MsgMissingSearchQuery    = "missingSearchQuery"
	MsgFailSearch            = "failSearch"
	MsgInvalidDateRange      = "invalidDateRange"
	MsgFailListCalendar      = "failListCalendar"
)
