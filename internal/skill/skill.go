package skill

import (
	"bitbucket.org/sotavant/mr-bus-skill/internal/logger"
	"bitbucket.org/sotavant/mr-bus-skill/internal/models"
	"bitbucket.org/sotavant/mr-bus-skill/internal/routes"
	"bitbucket.org/sotavant/mr-bus-skill/internal/tracker"
	"context"
	"fmt"
	"go.uber.org/zap"
)

type Skill struct {
	tracker tracker.Tracker
	routes  routes.AllowList
}

func New(t tracker.Tracker, allow routes.AllowList) *Skill {
	return &Skill{tracker: t, routes: allow}
}

// SessionEndedRequest yields neither a response nor an error.
func (s *Skill) Handle(ctx context.Context, req models.Request) (resp *models.Response, err error) {
	log := logger.Log.With(
		zap.String("requestId", req.Request.RequestID),
		zap.String("sessionId", req.Session.SessionID),
	)

	defer func() {
		if p := recover(); p != nil {
			resp, err = nil, fmt.Errorf("skill: panic handling %s: %v", req.Request.Type, p)
		}
		if err != nil {
			log.Info("event failed", zap.String("type", req.Request.Type), zap.Error(err))
		}
		observeInvocation(req.Request.Type, err)
	}()

	log.Debug("got event", zap.String("applicationId", req.Session.Application.ApplicationID))

	if req.Session.New {
		log.Info("onSessionStarted")
	}

	var speechlet models.SpeechletResponse

	switch req.Request.Type {
	case models.TypeLaunchRequest:
		log.Info("onLaunch")
		speechlet, err = s.busTimes(ctx)
	case models.TypeIntentRequest:
		log.Info("onIntent", zap.String("intent", intentName(req.Request.Intent)))
		speechlet, err = s.intent(ctx, req.Request.Intent)
	case models.TypeSessionEndedRequest:
		log.Info("onSessionEnded", zap.String("reason", req.Request.Reason))
		return nil, nil
	default:
		return nil, &UnsupportedRequestTypeError{Type: req.Request.Type}
	}

	if err != nil {
		return nil, err
	}

	r := models.BuildResponse(nil, speechlet)
	return &r, nil
}

func intentName(intent *models.Intent) string {
	if intent == nil {
		return ""
	}
	return intent.Name
}
