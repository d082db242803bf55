package response

import (
	"time"

	"retreat-booking/internal/data/entity"
)

type ActivityResponse struct {
	ID         string    `json:"id"`
	RetreatID  string    `json:"retreat_id"`
	Title      string    `json:"title"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Instructor string    `json:"instructor"`
	Location   string    `json:"location"`
	Capacity   int       `json:"capacity"`
}

type ConflictReportResponse struct {
	Kind     string           `json:"kind"`
	Resource string           `json:"resource"`
	A        ActivityResponse `json:"a"`
	B        ActivityResponse `json:"b"`
}

func ActivityToResponse(activity *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:         activity.ID.String(),
		RetreatID:  activity.RetreatID.String(),
		Title:      activity.Title,
		StartTime:  activity.StartTime,
		EndTime:    activity.EndTime,
		Instructor: activity.Instructor,
		Location:   activity.Location,
		Capacity:   activity.Capacity,
	}
}

func ConflictReportToResponse(report entity.ConflictReport) ConflictReportResponse {
	return ConflictReportResponse{
		Kind:     string(report.Kind),
		Resource: report.Resource,
		A:        ActivityToResponse(report.A),
		B:        ActivityToResponse(report.B),
	}
}
