package attendance

import "time"

const StatusPresent = "Present"

type Attendance struct {
	ID          string
	UserID      string
	Date        time.Time // working day, date-only
	CheckIn     *time.Time
	CheckOut    *time.Time
	Status      string
	WorkMinutes *int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / join
	UserName *string
}
