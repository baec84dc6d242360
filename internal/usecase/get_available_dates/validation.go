package get_available_dates

import (
	"fmt"

	"github.com/bookcore/appointment-service/internal/domain"
)

// validateRequest checks the request and fills in the default horizon.
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.HorizonDays < 0 {
		return fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}
	if req.HorizonDays == 0 {
		req.HorizonDays = domain.DefaultHorizonDays
	}
	if req.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: days must not exceed %d", ErrInvalidInput, domain.MaxHorizonDays)
	}

	return nil
}
