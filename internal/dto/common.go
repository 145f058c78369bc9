package dto

import "time"

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// ParseDate parses a wire-format date string. Empty input yields a nil time.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders a time as a wire-format date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateRangeParams defines the optional date window shared by the listing endpoints.
type DateRangeParams struct {
	FromDate string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
}

// Range resolves the bound strings into optional time bounds.
func (p DateRangeParams) Range() (from *time.Time, to *time.Time, err error) {
	from, err = ParseDate(p.FromDate)
	if err != nil {
		return nil, nil, err
	}
	to, err = ParseDate(p.ToDate)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
