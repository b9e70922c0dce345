package skill

import (
	"bitbucket.org/sotavant/mr-bus-skill/internal/models"
	"context"
	"fmt"
)

const (
	IntentGetBusTimes = "GetBusTimes"
	IntentHelp        = "AMAZON.HelpIntent"
	IntentStop        = "AMAZON.StopIntent"
	IntentCancel      = "AMAZON.CancelIntent"
)

const (
	welcomeTitle    = "Welcome"
	welcomeText     = "Hello. This is Mr. Bus. You can ask me when the next bus is due."
	welcomeReprompt = "Go on, ask me when the next bus is leaving."

	sessionEndTitle = "Session Ended"
	sessionEndText  = "I'll be here next time!"

	busTimesTitle = "Bus times"
)

func welcome() models.SpeechletResponse {
	return models.BuildSpeechletResponse(welcomeTitle, welcomeText, welcomeReprompt, false)
}

func sessionEnd() models.SpeechletResponse {
	return models.BuildSpeechletResponse(sessionEndTitle, sessionEndText, "", true)
}

func (s *Skill) busTimes(ctx context.Context) (models.SpeechletResponse, error) {
	entries, err := s.tracker.BusTimes(ctx, s.routes.StopIDs())
	if err != nil {
		return models.SpeechletResponse{}, fmt.Errorf("get bus times: %w", err)
	}

	return models.BuildSpeechletResponse(busTimesTitle, Speech(entries, s.routes), "", true), nil
}

func (s *Skill) intent(ctx context.Context, intent *models.Intent) (models.SpeechletResponse, error) {
	if intent == nil {
		return models.SpeechletResponse{}, &UnsupportedIntentError{}
	}

	switch intent.Name {
	case IntentGetBusTimes:
		return s.busTimes(ctx)
	case IntentHelp:
		return welcome(), nil
	case IntentStop, IntentCancel:
		return sessionEnd(), nil
	default:
		return models.SpeechletResponse{}, &UnsupportedIntentError{Name: intent.Name}
	}
}
