package analysis

// Payload types mirror the JSON schemas the model is held to. The jsonschema
// tags mark required fields so strict mode rejects partial output.

type moodScoresPayload struct {
	Resilience         int `json:"resilience" jsonschema:"required"`
	SelfAwareness      int `json:"selfAwareness" jsonschema:"required"`
	Empathy            int `json:"empathy" jsonschema:"required"`
	MeaningOrientation int `json:"meaningOrientation" jsonschema:"required"`
	Openness           int `json:"openness" jsonschema:"required"`
	SelfAcceptance     int `json:"selfAcceptance" jsonschema:"required"`
	SelfDirection      int `json:"selfDirection" jsonschema:"required"`
}

type reportPayload struct {
	TodayFlow  string            `json:"todayFlow" jsonschema:"required"`
	Insight    string            `json:"insight" jsonschema:"required"`
	Quests     []string          `json:"quests" jsonschema:"required"`
	Summary    string            `json:"summary" jsonschema:"required"`
	Keywords   []string          `json:"keywords" jsonschema:"required"`
	MoodScores moodScoresPayload `json:"moodScores" jsonschema:"required"`
}

type traitSelection struct {
	Category string   `json:"category" jsonschema:"required"`
	TraitIDs []string `json:"traitIds" jsonschema:"required"`
}

type traitTagPayload struct {
	Selections []traitSelection `json:"selections" jsonschema:"required"`
}

type traitNarrativePayload struct {
	Rationale string `json:"rationale" jsonschema:"required"`
	Opening   string `json:"opening" jsonschema:"required"`
	Body      string `json:"body" jsonschema:"required"`
	Closing   string `json:"closing" jsonschema:"required"`
}

type clusterGroupPayload struct {
	Name            string   `json:"name" jsonschema:"required"`
	Meaning         string   `json:"meaning" jsonschema:"required"`
	ConnectionStyle string   `json:"connectionStyle" jsonschema:"required"`
	Dates           []string `json:"dates" jsonschema:"required"`
}

type clusterPayload struct {
	Groups []clusterGroupPayload `json:"groups" jsonschema:"required"`
}

type continuityPayload struct {
	Dates []string `json:"dates" jsonschema:"required"`
}

var (
	reportSchema         = generateSchema[reportPayload]()
	traitTagSchema       = generateSchema[traitTagPayload]()
	traitNarrativeSchema = generateSchema[traitNarrativePayload]()
	clusterSchema        = generateSchema[clusterPayload]()
	continuitySchema     = generateSchema[continuityPayload]()
)
