package main

import (
	"bitbucket.org/sotavant/mr-bus-skill/internal/logger"
	"bitbucket.org/sotavant/mr-bus-skill/internal/models"
	"bitbucket.org/sotavant/mr-bus-skill/internal/skill"
	"encoding/json"
	"errors"
	"go.uber.org/zap"
	"net/http"
)

type app struct {
	skill *skill.Skill
}

func newApp(s *skill.Skill) *app {
	return &app{skill: s}
}

func (a *app) webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))

		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	logger.Log.Debug("decoding request")
	var req models.Request
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		logger.Log.Debug("cannot decode request JSON body", zap.Error(err))

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp, err := a.skill.Handle(ctx, req)
	if err != nil {
		logger.Log.Debug("cannot handle event", zap.String("type", req.Request.Type), zap.Error(err))
		w.WriteHeader(statusFor(err))
		return
	}

	// SessionEndedRequest: ответ без тела
	if resp == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	if err := enc.Encode(resp); err != nil {
		logger.Log.Debug("error encoding response", zap.Error(err))
		return
	}
	logger.Log.Debug("sending HTTP 200 response")
}

func statusFor(err error) int {
	var intentErr *skill.UnsupportedIntentError
	var typeErr *skill.UnsupportedRequestTypeError

	switch {
	case errors.As(err, &intentErr), errors.As(err, &typeErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
