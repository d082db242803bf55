package request

type CreateActivityRequest struct {
	RetreatID  string `json:"retreat_id" validate:"required,uuid4"`
	Title      string `json:"title" validate:"required,min=2,max=120"`
	StartTime  string `json:"start_time" validate:"required"`
	EndTime    string `json:"end_time" validate:"required"`
	Instructor string `json:"instructor" validate:"required"`
	Location   string `json:"location" validate:"required"`
	Capacity   int    `json:"capacity" validate:"required,min=1"`
}
