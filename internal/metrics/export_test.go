package metrics

import "time"

func (r *Recorder) SetNow(now func() time.Time) {
	r.now = now
}
