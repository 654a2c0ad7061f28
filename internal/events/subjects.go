package events

const (
	StreamName   = "SKADIX_EVENTS"
	StreamMaxAge = "720h" // 30 days

	SubjectScoreComputed = "skadix.score.computed"
)

func SubjectScenarioSaved(id string) string   { return "skadix.scenario." + id + ".saved" }
func SubjectScenarioDeleted(id string) string { return "skadix.scenario." + id + ".deleted" }
