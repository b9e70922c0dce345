package models

const (
	TypeLaunchRequest       = "LaunchRequest"
	TypeIntentRequest       = "IntentRequest"
	TypeSessionEndedRequest = "SessionEndedRequest"
)

const Version = "1.0"

type Request struct {
	Version string         `json:"version"`
	Session Session        `json:"session"`
	Request RequestPayload `json:"request"`
}

type Session struct {
	New         bool           `json:"new"`
	SessionID   string         `json:"sessionId"`
	Application Application    `json:"application"`
	Attributes  map[string]any `json:"attributes,omitempty"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type RequestPayload struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp"`
	Locale    string  `json:"locale,omitempty"`
	Reason    string  `json:"reason,omitempty"`
	Intent    *Intent `json:"intent,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

type Response struct {
	Version           string            `json:"version"`
	SessionAttributes map[string]any    `json:"sessionAttributes"`
	Response          SpeechletResponse `json:"response"`
}

type SpeechletResponse struct {
	OutputSpeech     OutputSpeech `json:"outputSpeech"`
	Card             Card         `json:"card"`
	Reprompt         *Reprompt    `json:"reprompt,omitempty"`
	ShouldEndSession bool         `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}
