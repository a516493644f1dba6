package entity

// Address is the nested location sub-record of a store draft. Every field is
// optional at the schema level; the registration backend decides how much of
// it a live store really needs.
type Address struct {
	Country string `json:"country"`
	State   string `json:"state"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}
