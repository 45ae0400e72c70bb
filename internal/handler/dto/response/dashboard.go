package response

import (
	"time"

	"campground/internal/usecase/queries"
)

type DashboardResponse struct {
	PeriodKind         string           `json:"periodKind"`
	PeriodStart        time.Time        `json:"periodStart"`
	PeriodEnd          time.Time        `json:"periodEnd"`
	OccupiedCount      int              `json:"occupiedCount"`
	FreeCount          int              `json:"freeCount"`
	MaintenanceCount   int              `json:"maintenanceCount"`
	OccupancyPct       int              `json:"occupancyPct"`
	CheckIns           int              `json:"checkIns"`
	CheckOuts          int              `json:"checkOuts"`
	ActiveReservations int              `json:"activeReservations"`
	StaysRevenueCents  int64            `json:"staysRevenueCents"`
	ExtrasRevenueCents map[string]int64 `json:"extrasRevenueCentsByCode"`
	TotalRevenueCents  int64            `json:"totalRevenueCents"`
}

func FromMetrics(m *queries.Metrics) *DashboardResponse {
	extras := m.ExtrasRevenueCents
	if extras == nil {
		extras = map[string]int64{}
	}
	return &DashboardResponse{
		PeriodKind:         m.PeriodKind,
		PeriodStart:        m.PeriodStart,
		PeriodEnd:          m.PeriodEnd,
		OccupiedCount:      m.OccupiedCount,
		FreeCount:          m.FreeCount,
		MaintenanceCount:   m.MaintenanceCount,
		OccupancyPct:       m.OccupancyPct,
		CheckIns:           m.CheckIns,
		CheckOuts:          m.CheckOuts,
		ActiveReservations: m.ActiveReservations,
		StaysRevenueCents:  m.StaysRevenueCents,
		ExtrasRevenueCents: extras,
		TotalRevenueCents:  m.TotalRevenueCents,
	}
}

type PitchStatusResponse struct {
	ID     int32  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func FromPitchStatusViews(views []*queries.PitchStatusView) []*PitchStatusResponse {
	out := make([]*PitchStatusResponse, len(views))
	for i, v := range views {
		out[i] = &PitchStatusResponse{ID: v.ID, Name: v.Name, Status: v.Status}
	}
	return out
}
