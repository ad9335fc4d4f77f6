package catalog

// CCAClass describes one class of depreciable property recognized by
// Schedule 8, with its prescribed declining-balance rate. Straight-line
// classes carry a zero rate and a descriptive label instead.
type CCAClass struct {
	Number      string
	Description string
	Rate        string
}

var ccaClasses = []CCAClass{
	{Number: "1", Description: "Buildings acquired after 1987", Rate: "4"},
	{Number: "8", Description: "Furniture, fixtures, machinery and equipment", Rate: "20"},
	{Number: "10", Description: "Motor vehicles and computer hardware (pre-2007)", Rate: "30"},
	{Number: "12", Description: "Tools, dies, small equipment under $500", Rate: "100"},
	{Number: "13", Description: "Leasehold improvements", Rate: "SL"},
	{Number: "14", Description: "Patents, franchises, concessions (limited life)", Rate: "SL"},
	{Number: "43", Description: "Manufacturing and processing machinery", Rate: "30"},
	{Number: "43.1", Description: "Clean energy generation equipment", Rate: "30"},
	{Number: "43.2", Description: "Clean energy generation equipment (accelerated)", Rate: "50"},
	{Number: "44", Description: "Patents acquired after April 26, 1993", Rate: "25"},
	{Number: "45", Description: "Computer hardware (Mar 2004 - Mar 2007)", Rate: "45"},
	{Number: "50", Description: "Computer hardware acquired after March 18, 2007", Rate: "55"},
	{Number: "53", Description: "Manufacturing machinery (2016-2025)", Rate: "50"},
	{Number: "54", Description: "Zero-emission vehicles", Rate: "30"},
	{Number: "55", Description: "Zero-emission vehicles for lease or rent", Rate: "40"},
}

// CCAClasses returns the recognized asset classes in schedule order.
func CCAClasses() []CCAClass {
	return ccaClasses
}

// RateForClass returns the prescribed rate for a class number. The second
// return is false for unknown classes.
func RateForClass(number string) (string, bool) {
	for _, c := range ccaClasses {
		if c.Number == number {
			return c.Rate, true
		}
	}
	return "", false
}
