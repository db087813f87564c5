package entities

// WorkingWindowRequest upserts the schedule row for one day of the week
// (0 = Sunday .. 6 = Saturday). Times are 24-hour "HH:MM".
type WorkingWindowRequest struct {
	DayOfWeek    int    `json:"day_of_week"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	IsWorkingDay bool   `json:"is_working_day"`
}

type ScheduleUpdateRequest struct {
	Windows []WorkingWindowRequest `json:"windows"`
}

type WorkingWindowResponse struct {
	DayOfWeek    int    `json:"day_of_week"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	IsWorkingDay bool   `json:"is_working_day"`
}
