package request

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar date format used by the dashboard forms.
const DateLayout = time.DateOnly

var ErrInvalidDate = errors.New("invalid date")

// Brazilian plates, old (ABC1234) and Mercosul (ABC1D23) formats.
var plateRe = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z0-9][0-9]{2}$`)

var isoDate validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := ParseDate(s)
	return err == nil
}

var plate validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return plateRe.MatchString(normalizePlate(s))
}

// RegisterValidations installs the custom binding tags (isodate, plate) on
// gin's validator engine.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	if err := v.RegisterValidation("isodate", isoDate); err != nil {
		return err
	}
	return v.RegisterValidation("plate", plate)
}

// ParseDate accepts a calendar date (2006-01-02) or a full RFC 3339
// timestamp. Calendar dates are midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}

func parseOptionalDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return ParseDate(s)
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseOptionalDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func normalizePlate(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// ListQuery holds the filters shared by the collection listings. Each
// endpoint reads the fields that apply to it.
type ListQuery struct {
	Status    string `form:"status"`
	Type      string `form:"type"`
	Origin    string `form:"origin"`
	ProjectID string `form:"project_id"`
	TeamID    string `form:"team_id"`
	VehicleID string `form:"vehicle_id"`
	Query     string `form:"q"`
}

type MaintenanceDueQuery struct {
	Days *int `form:"days" binding:"omitempty,gte=0,lte=365"`
}

// StatusPatch is the body of every PATCH /:id/status endpoint.
type StatusPatch struct {
	Status string `json:"status" binding:"required"`
}
