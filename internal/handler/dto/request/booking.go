package request

import (
	"time"

	"campground/internal/domain/booking"
	"campground/internal/domain/schedule"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the custom binding validators on gin's
// validator engine. Called once at router setup.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("dateonly", validDateOnly)
}

func validDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(schedule.DateLayout, fl.Field().String())
	return err == nil
}

type GuestRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	DNI          string `json:"dni" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	LicensePlate string `json:"license_plate" binding:"required"`
}

type ExtraSelectionRequest struct {
	ExtraID  int32 `json:"extra_id" binding:"required"`
	Quantity int32 `json:"quantity" binding:"required,min=1"`
}

type CreateBookingRequest struct {
	StartDate string                  `json:"start_date" binding:"required,dateonly"`
	EndDate   string                  `json:"end_date" binding:"required,dateonly"`
	Guest     GuestRequest            `json:"guest" binding:"required"`
	Extras    []ExtraSelectionRequest `json:"extras" binding:"omitempty,dive"`
}

func (r CreateBookingRequest) ExtraSelections() []booking.ExtraSelection {
	if len(r.Extras) == 0 {
		return nil
	}
	selections := make([]booking.ExtraSelection, len(r.Extras))
	for i, e := range r.Extras {
		selections[i] = booking.ExtraSelection{
			ExtraID:  e.ExtraID,
			Quantity: e.Quantity,
		}
	}
	return selections
}

type AssignPitchRequest struct {
	PitchID int32 `json:"pitch_id" binding:"required,min=1"`
}
