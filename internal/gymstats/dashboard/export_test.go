package dashboard

import "time"

func SetHandlerClock(h *Handler, now func() time.Time) {
	h.now = now
}
