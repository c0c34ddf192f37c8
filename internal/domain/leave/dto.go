package leave

import (
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	UserID    string `json:"-"`
	UserName  string `json:"-"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Remarks   string `json:"remarks"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidLeaveType(LeaveType(r.Type)) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be Paid, Sick or Unpaid",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideLeaveRequestRequest struct {
	RequestID    string `json:"-"`
	AdminComment string `json:"admin_comment"`
}

// UpdateStatusRequest carries the decision written by the repository. The
// status moves Pending -> Approved or Pending -> Rejected exactly once.
type UpdateStatusRequest struct {
	ID           string
	Status       LeaveStatus
	AdminComment *string
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserName     string  `json:"user_name"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Remarks      string  `json:"remarks"`
	Status       string  `json:"status"`
	AdminComment *string `json:"admin_comment,omitempty"`
}

func ToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID,
		UserID:       l.UserID,
		UserName:     l.UserName,
		Type:         string(l.Type),
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		Days:         l.InclusiveDays(),
		Remarks:      l.Remarks,
		Status:       string(l.Status),
		AdminComment: l.AdminComment,
	}
}
