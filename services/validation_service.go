package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"hotel-booking/models"
	"hotel-booking/utils"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{9}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3}$`)
)

// ValidationService guards the two form boundaries: the stay selection
// on the date page and the payment fields on the payment page. All of
// its failures are user-input problems surfaced as inline text, never
// infrastructure errors.
type ValidationService struct {
	// MinStayNights is the shortest bookable stay in whole nights.
	MinStayNights int
}

func NewValidationService(minStayNights int) *ValidationService {
	if minStayNights < 1 {
		minStayNights = 1
	}
	return &ValidationService{MinStayNights: minStayNights}
}

// ValidateStay checks the raw date inputs top to bottom and stops at
// the first failing rule; the returned error text is shown to the user
// verbatim. On success the parsed range is safe to hand to the
// resolver.
func (v *ValidationService) ValidateStay(checkInRaw, checkOutRaw string, now time.Time, maintenanceDates []string) (models.DateRange, error) {
	if strings.TrimSpace(checkInRaw) == "" || strings.TrimSpace(checkOutRaw) == "" {
		return models.DateRange{}, errors.New("Please select both check-in and check-out dates.")
	}

	checkIn, errIn := utils.ParseDate(checkInRaw)
	checkOut, errOut := utils.ParseDate(checkOutRaw)
	if errIn != nil || errOut != nil {
		return models.DateRange{}, errors.New("Please select both check-in and check-out dates.")
	}

	if checkIn.Before(utils.Today(now)) {
		return models.DateRange{}, errors.New("Invalid date selection. Check-in date cannot be in the past.")
	}

	if !checkIn.Before(checkOut) {
		return models.DateRange{}, errors.New("Check-out date must be after the check-in date.")
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < v.MinStayNights {
		return models.DateRange{}, fmt.Errorf("Minimum stay of %d nights required.", v.MinStayNights)
	}

	rng := models.DateRange{CheckIn: checkIn, CheckOut: checkOut}
	if blocked := blockedInRange(rng, maintenanceDates); len(blocked) > 0 {
		return models.DateRange{}, fmt.Errorf(
			"The following dates are unavailable due to maintenance: %s. Please choose different dates.",
			strings.Join(blocked, ", "),
		)
	}

	return rng, nil
}

// blockedInRange returns the maintenance dates falling inside the
// range, inclusive on both ends, formatted for display.
func blockedInRange(rng models.DateRange, maintenanceDates []string) []string {
	var blocked []string
	for _, raw := range maintenanceDates {
		d, err := time.Parse(models.DateLayout, raw)
		if err != nil {
			continue
		}
		if rng.Contains(d) {
			blocked = append(blocked, utils.FormatLocalDate(d))
		}
	}
	return blocked
}

// PaymentInput carries the raw payment form fields.
type PaymentInput struct {
	CardNumber  string `json:"cardNumber" form:"cardNumber"`
	ExpiryMonth string `json:"expiryMonth" form:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear" form:"expiryYear"`
	CVV         string `json:"cvv" form:"cvv"`
}

// ValidatePayment evaluates every field rule and reports all failures
// at once, keyed by field name. Month and year share the single
// "expiryDate" key. An empty map means the mock payment may proceed.
func (v *ValidationService) ValidatePayment(in PaymentInput) map[string]string {
	errs := map[string]string{}

	cardNumber := strings.TrimSpace(in.CardNumber)
	cvv := strings.TrimSpace(in.CVV)

	if cardNumber == "" {
		errs["cardNumber"] = "Card number is required."
	}
	if strings.TrimSpace(in.ExpiryMonth) == "" || strings.TrimSpace(in.ExpiryYear) == "" {
		errs["expiryDate"] = "Expiry date is required."
	}
	if cvv == "" {
		errs["cvv"] = "CVV is required."
	}

	if cardNumber != "" && !cardNumberPattern.MatchString(cardNumber) {
		errs["cardNumber"] = "Card number must be 9 digits."
	}
	if cvv != "" && !cvvPattern.MatchString(cvv) {
		errs["cvv"] = "CVV must be 3 digits."
	}

	return errs
}
