package attendance

import "time"

type AttendanceResponse struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	UserName  *string  `json:"user_name,omitempty"`
	Date      string   `json:"date"`
	CheckIn   *string  `json:"check_in,omitempty"`
	CheckOut  *string  `json:"check_out,omitempty"`
	Status    string   `json:"status"`
	WorkHours *float64 `json:"work_hours,omitempty"`
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:       a.ID,
		UserID:   a.UserID,
		UserName: a.UserName,
		Date:     a.Date.Format("2006-01-02"),
		CheckIn:  timePtrToString(a.CheckIn),
		CheckOut: timePtrToString(a.CheckOut),
		Status:   a.Status,
	}
	if a.WorkMinutes != nil {
		hours := float64(*a.WorkMinutes) / 60
		resp.WorkHours = &hours
	}
	return resp
}
