package repository

var (
	BoolToInt  = boolToInt
	FormatTime = formatTime
	ParseTime  = parseTime
)
