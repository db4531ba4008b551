package ui

// LaneColor returns the accent for a 0-based lane.
func LaneColor(lane int) string {
	t := GetCurrentTheme()
	if len(t.Lanes) == 0 || lane < 0 {
		return ""
	}
	return t.Lanes[lane%len(t.Lanes)]
}

// ColorLabel returns the escape code for labels.
func ColorLabel() string { return GetCurrentTheme().Label }

// ColorSuccess returns the escape code for success messages.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorWarning returns the escape code for warnings.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the escape code for errors.
func ColorError() string { return GetCurrentTheme().Error }

// ColorBold returns the escape code for bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the escape code clearing all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }
