package annotate

import "github.com/ericfisherdev/landoui/internal/domain/model"

// LatestStatus returns the status of the most recently updated event. The
// boolean is false when events is empty. When several events share the latest
// timestamp the first of them wins.
func LatestStatus(events []model.StatusEvent) (string, bool) {
	if len(events) == 0 {
		return "", false
	}

	latest := events[0]
	for _, e := range events[1:] {
		if e.UpdatedAt.After(latest.UpdatedAt) {
			latest = e
		}
	}
	return latest.Status, true
}
