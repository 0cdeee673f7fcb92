package check_date

// SelectableResponse HTTP response model
type SelectableResponse struct {
	Date       string `json:"date"`
	Selectable bool   `json:"selectable"`
	ClosedDay  string `json:"closedDay"`
}
