package request

type CreateBlockRequest struct {
	PitchID   int32   `json:"pitch_id" binding:"required,min=1"`
	StartDate string  `json:"start_date" binding:"required,dateonly"`
	EndDate   string  `json:"end_date" binding:"required,dateonly"`
	Kind      string  `json:"kind" binding:"required,oneof=maintenance occupied"`
	Reason    *string `json:"reason,omitempty"`
}
