package dataset

import "fmt"

/*
DataFormatError is returned when an instance does not fit the features it is
supposed to have values for: a wrong number of fields, an unparseable numeric
value or a structural problem in the source it was read from.

Row is the 1-based position of the offending row in its source (the line
number for file based sources), 0 when unknown. Feature is empty when the
problem is not specific to a feature.
*/
type DataFormatError struct {
	Row     int
	Feature string
	Value   string
	Reason  string
}

func (dfe *DataFormatError) Error() string {
	msg := "malformed data"
	if dfe.Row > 0 {
		msg = fmt.Sprintf("%s on row %d", msg, dfe.Row)
	}
	if dfe.Feature != "" {
		msg = fmt.Sprintf("%s for feature %s", msg, dfe.Feature)
	}
	if dfe.Value != "" {
		msg = fmt.Sprintf("%s (value %q)", msg, dfe.Value)
	}
	return fmt.Sprintf("%s: %s", msg, dfe.Reason)
}
