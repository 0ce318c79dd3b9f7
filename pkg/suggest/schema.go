package suggest

// Schema is the subset of the generative-language response schema
// vocabulary the client constrains replies with.
type Schema struct {
	Type       string             `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Enum       []string           `json:"enum,omitempty"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	Tools            []tool            `json:"tools,omitempty"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type tool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// text returns the concatenated text parts of the first candidate.
func (r generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	out := ""
	for _, p := range r.Candidates[0].Content.Parts {
		out += p.Text
	}
	return out
}

func dayPlanSchema() *Schema {
	return &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"date": {Type: "string"},
			"activities": {
				Type: "array",
				Items: &Schema{
					Type: "object",
					Properties: map[string]*Schema{
						"time":        {Type: "string"},
						"location":    {Type: "string"},
						"description": {Type: "string"},
						"type":        {Type: "string", Enum: []string{"TRANSPORT", "MEAL", "SITE", "OTHER"}},
						"costTWD":     {Type: "number"},
						"notes":       {Type: "string"},
					},
				},
			},
			"dailyNote": {Type: "string"},
		},
	}
}

func weatherSchema() *Schema {
	return &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"forecast": {
				Type: "array",
				Items: &Schema{
					Type: "object",
					Properties: map[string]*Schema{
						"dayName":    {Type: "string"},
						"temp":       {Type: "string"},
						"condition":  {Type: "string"},
						"rainChance": {Type: "string"},
					},
				},
			},
			"clothingAdvice": {Type: "string"},
			"umbrellaNeeded": {Type: "boolean"},
			"generalOutlook": {Type: "string"},
		},
	}
}
