package domain

type CountryCode struct {
	Code    string `json:"code"`
	Country string `json:"country"`
}

var countryCodes = []CountryCode{
	{Code: "+1", Country: "United States/Canada"},
	{Code: "+44", Country: "United Kingdom"},
	{Code: "+91", Country: "India"},
	{Code: "+86", Country: "China"},
	{Code: "+81", Country: "Japan"},
	{Code: "+49", Country: "Germany"},
	{Code: "+33", Country: "France"},
	{Code: "+39", Country: "Italy"},
	{Code: "+34", Country: "Spain"},
	{Code: "+61", Country: "Australia"},
	{Code: "+55", Country: "Brazil"},
	{Code: "+52", Country: "Mexico"},
	{Code: "+7", Country: "Russia"},
	{Code: "+82", Country: "South Korea"},
	{Code: "+27", Country: "South Africa"},
	{Code: "+31", Country: "Netherlands"},
	{Code: "+46", Country: "Sweden"},
	{Code: "+47", Country: "Norway"},
	{Code: "+41", Country: "Switzerland"},
	{Code: "+65", Country: "Singapore"},
}

// CountryCodes returns a copy of the phone prefixes offered by the signup form.
func CountryCodes() []CountryCode {
	out := make([]CountryCode, len(countryCodes))
	copy(out, countryCodes)
	return out
}
