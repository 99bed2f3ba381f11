package extract

import "strconv"

const (
	isoDate  = "2006-01-02"
	longDate = "January 2, 2006"
)

// Suggestion is the form pre-fill derived from a Result. It is shown to a
// person for confirmation and must never be saved without review.
type Suggestion struct {
	Description   string   `json:"description,omitempty"`
	Amount        string   `json:"amount,omitempty"`
	Date          string   `json:"date,omitempty"`
	DateLabel     string   `json:"date_label,omitempty"`
	DateAmbiguous bool     `json:"date_ambiguous,omitempty"`
	Category      Category `json:"category,omitempty"`
	CategoryLabel string   `json:"category_label,omitempty"`
	Preview       string   `json:"preview,omitempty"`
	Applied       []string `json:"applied"`
}

// Suggest formats r for a form: two-decimal amount, ISO and long dates, category label.
func Suggest(r Result) Suggestion {
	s := Suggestion{
		Description: r.Description,
		Preview:     r.Preview,
		Applied:     r.Fields(),
	}
	if s.Applied == nil {
		s.Applied = []string{}
	}
	if r.Amount != nil {
		s.Amount = strconv.FormatFloat(*r.Amount, 'f', 2, 64)
	}
	if r.Date != nil {
		s.Date = r.Date.Format(isoDate)
		s.DateLabel = r.Date.Format(longDate)
		s.DateAmbiguous = r.DateAmbiguous
	}
	if r.Category != nil {
		s.Category = *r.Category
		s.CategoryLabel = r.Category.Label()
	}
	return s
}
