package response

import (
	"campground/internal/usecase/queries"
)

type ExtraResponse struct {
	ID              int32  `json:"id"`
	Code            string `json:"code"`
	Name            string `json:"name"`
	UnitAmountCents int64  `json:"unitAmountCents"`
	Kind            string `json:"kind"`
	MaxUnits        int32  `json:"maxUnits"`
}

func FromExtraViews(views []*queries.ExtraView) []*ExtraResponse {
	out := make([]*ExtraResponse, len(views))
	for i, v := range views {
		out[i] = &ExtraResponse{
			ID:              v.ID,
			Code:            v.Code,
			Name:            v.Name,
			UnitAmountCents: v.UnitAmountCents,
			Kind:            v.Kind,
			MaxUnits:        v.MaxUnits,
		}
	}
	return out
}
