package response

import (
	"campground/internal/usecase/commands"
	"campground/internal/usecase/queries"

	"github.com/google/uuid"
)

type BlockResponse struct {
	ID        uuid.UUID `json:"id"`
	PitchID   int32     `json:"pitchId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Kind      string    `json:"kind"`
	Reason    *string   `json:"reason,omitempty"`
}

func FromBlockView(bv *queries.BlockView) *BlockResponse {
	return &BlockResponse{
		ID:        bv.ID,
		PitchID:   bv.PitchID,
		StartDate: bv.StartOn.Format("2006-01-02"),
		EndDate:   bv.EndOn.Format("2006-01-02"),
		Kind:      bv.Kind,
		Reason:    bv.Reason,
	}
}

func FromBlockViews(bvs []*queries.BlockView) []*BlockResponse {
	out := make([]*BlockResponse, len(bvs))
	for i, bv := range bvs {
		out[i] = FromBlockView(bv)
	}
	return out
}

// CreateBlockResponse carries the reassignment outcome alongside the new
// block: partial reassignment is data, not an error.
type CreateBlockResponse struct {
	BlockID    uuid.UUID   `json:"blockId"`
	Reassigned int         `json:"reassigned"`
	Unresolved []uuid.UUID `json:"unresolved"`
}

func FromReassignmentReport(r *commands.ReassignmentReport) *CreateBlockResponse {
	unresolved := r.Unresolved
	if unresolved == nil {
		unresolved = []uuid.UUID{}
	}
	return &CreateBlockResponse{
		BlockID:    r.BlockID,
		Reassigned: r.Reassigned,
		Unresolved: unresolved,
	}
}
