package models

const (
	speechTypePlainText = "PlainText"
	cardTypeSimple      = "Simple"
	cardPrefix          = "SessionSpeechlet - "
)

// empty repromptText means no reprompt
func BuildSpeechletResponse(title, output, repromptText string, shouldEndSession bool) SpeechletResponse {
	resp := SpeechletResponse{
		OutputSpeech: OutputSpeech{
			Type: speechTypePlainText,
			Text: output,
		},
		Card: Card{
			Type:    cardTypeSimple,
			Title:   cardPrefix + title,
			Content: cardPrefix + output,
		},
		ShouldEndSession: shouldEndSession,
	}

	if repromptText != "" {
		resp.Reprompt = &Reprompt{
			OutputSpeech: OutputSpeech{
				Type: speechTypePlainText,
				Text: repromptText,
			},
		}
	}

	return resp
}

func BuildResponse(sessionAttributes map[string]any, speechlet SpeechletResponse) Response {
	if sessionAttributes == nil {
		sessionAttributes = map[string]any{}
	}

	return Response{
		Version:           Version,
		SessionAttributes: sessionAttributes,
		Response:          speechlet,
	}
}
