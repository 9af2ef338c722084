package ridership

import "fmt"

// DataFormatError reports malformed input data: a missing required column or
// a value that failed to parse. Row is 1-based and counts the header row;
// it is 0 when the error is not tied to a specific row.
type DataFormatError struct {
	Row int
	Msg string
}

func (e *DataFormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("data format error at row %d: %s", e.Row, e.Msg)
	}
	return "data format error: " + e.Msg
}

// NewDataFormatError creates a DataFormatError not tied to a row.
func NewDataFormatError(format string, args ...any) *DataFormatError {
	return &DataFormatError{Msg: fmt.Sprintf(format, args...)}
}

// NewDataFormatErrorAt creates a DataFormatError for a specific 1-based row.
func NewDataFormatErrorAt(row int, format string, args ...any) *DataFormatError {
	return &DataFormatError{Row: row, Msg: fmt.Sprintf(format, args...)}
}

// RenderError reports invalid geometry reaching the renderer, such as a
// non-positive canvas dimension or maximum radius.
type RenderError struct {
	Msg string
}

func (e *RenderError) Error() string {
	return "render error: " + e.Msg
}

// NewRenderError creates a RenderError.
func NewRenderError(format string, args ...any) *RenderError {
	return &RenderError{Msg: fmt.Sprintf(format, args...)}
}
