package notifyservice

// ConflictNotification уведомление о конфликте расписания
type ConflictNotification struct {
	RecipientID   string `json:"recipient_id"`
	RoomID        string `json:"room_id"`
	Day           string `json:"day"`
	Severity      string `json:"severity"`
	FirstCourse   string `json:"first_course"`
	FirstSlot     string `json:"first_slot"`
	SecondCourse  string `json:"second_course"`
	SecondSlot    string `json:"second_slot"`
	OverlapPeriod string `json:"overlap_period"`
	Message       string `json:"message"`
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
