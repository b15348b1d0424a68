package quota

import "time"

// SetClockForTest replaces the clock used to derive the current UTC day.
func (d *Daily) SetClockForTest(now func() time.Time) {
	d.now = now
}
