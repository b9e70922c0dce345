package skill

import (
	"bitbucket.org/sotavant/mr-bus-skill/internal/models"
	"bitbucket.org/sotavant/mr-bus-skill/internal/routes"
	"bitbucket.org/sotavant/mr-bus-skill/internal/tracker"
	"bitbucket.org/sotavant/mr-bus-skill/internal/tracker/mock"
	"context"
	"errors"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func newTestSkill(t *testing.T) (*Skill, *mock.MockTracker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	tr := mock.NewMockTracker(ctrl)

	allow, err := routes.Default()
	require.NoError(t, err)

	return New(tr, allow), tr
}

func event(typ string, intent *models.Intent) models.Request {
	return models.Request{
		Version: "1.0",
		Session: models.Session{
			SessionID:   "SessionId.1",
			Application: models.Application{ApplicationID: "amzn1.ask.skill.1"},
		},
		Request: models.RequestPayload{
			Type:      typ,
			RequestID: "EdwRequestId.1",
			Intent:    intent,
		},
	}
}

func TestHandleLaunch(t *testing.T) {
	s, tr := newTestSkill(t)

	tr.EXPECT().
		BusTimes(gomock.Any(), []string{"36235627", "36235628"}).
		Return([]models.BusTimes{
			{StopID: "36235627", ServiceID: "23", Arrivals: arrivals(5, 12)},
		}, nil)

	req := event(models.TypeLaunchRequest, nil)
	req.Session.New = true

	resp, err := s.Handle(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "1.0", resp.Version)
	assert.Empty(t, resp.SessionAttributes)
	assert.NotNil(t, resp.SessionAttributes)
	assert.Equal(t, "There's a 23 in 5 and 12 minutes. ", resp.Response.OutputSpeech.Text)
	assert.Equal(t, "SessionSpeechlet - Bus times", resp.Response.Card.Title)
	assert.Nil(t, resp.Response.Reprompt)
	assert.True(t, resp.Response.ShouldEndSession)
}

func TestHandleIntents(t *testing.T) {
	testCases := []struct {
		name       string
		intent     string
		text       string
		endSession bool
		reprompt   bool
	}{
		{
			name:     "help",
			intent:   IntentHelp,
			text:     welcomeText,
			reprompt: true,
		},
		{
			name:       "stop",
			intent:     IntentStop,
			text:       sessionEndText,
			endSession: true,
		},
		{
			name:       "cancel",
			intent:     IntentCancel,
			text:       sessionEndText,
			endSession: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSkill(t)

			req := event(models.TypeIntentRequest, &models.Intent{Name: tc.intent})
			req.Session.Attributes = map[string]any{"anything": 1}

			resp, err := s.Handle(context.Background(), req)
			require.NoError(t, err)
			require.NotNil(t, resp)

			assert.Equal(t, tc.text, resp.Response.OutputSpeech.Text)
			assert.Equal(t, tc.endSession, resp.Response.ShouldEndSession)
			assert.Equal(t, tc.reprompt, resp.Response.Reprompt != nil)
			assert.Empty(t, resp.SessionAttributes)
		})
	}
}

func TestHandleGetBusTimesIntent(t *testing.T) {
	s, tr := newTestSkill(t)

	tr.EXPECT().
		BusTimes(gomock.Any(), gomock.Any()).
		Return([]models.BusTimes{
			{StopID: "36235628", ServiceID: "8", Arrivals: arrivals(2)},
			{StopID: "36235628", ServiceID: "23", Arrivals: arrivals(3)},
		}, nil)

	resp, err := s.Handle(context.Background(), event(models.TypeIntentRequest, &models.Intent{
		Name:  IntentGetBusTimes,
		Slots: map[string]models.Slot{"Stop": {Name: "Stop", Value: "home"}},
	}))
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "There's a 8 in 2 minutes. ", resp.Response.OutputSpeech.Text)
	assert.True(t, resp.Response.ShouldEndSession)
}

func TestHandleUnsupportedIntent(t *testing.T) {
	s, _ := newTestSkill(t)

	before := testutil.ToFloat64(invocationsTotal.WithLabelValues(models.TypeIntentRequest, "error"))

	resp, err := s.Handle(context.Background(), event(models.TypeIntentRequest, &models.Intent{Name: "AMAZON.FallbackIntent"}))
	assert.Nil(t, resp)

	var ue *UnsupportedIntentError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "AMAZON.FallbackIntent", ue.Name)

	assert.Equal(t, before+1, testutil.ToFloat64(invocationsTotal.WithLabelValues(models.TypeIntentRequest, "error")))
}

func TestHandleIntentRequestWithoutIntent(t *testing.T) {
	s, _ := newTestSkill(t)

	resp, err := s.Handle(context.Background(), event(models.TypeIntentRequest, nil))
	assert.Nil(t, resp)

	var ue *UnsupportedIntentError
	assert.True(t, errors.As(err, &ue))
}

func TestHandleFetchError(t *testing.T) {
	s, tr := newTestSkill(t)

	tr.EXPECT().
		BusTimes(gomock.Any(), gomock.Any()).
		Return(nil, &tracker.FetchError{Sentinel: tracker.ErrBadStatus, Op: "getBusTimes", Status: 503})

	resp, err := s.Handle(context.Background(), event(models.TypeLaunchRequest, nil))
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, tracker.ErrBadStatus)

	var fe *tracker.FetchError
	assert.True(t, errors.As(err, &fe))
}

func TestHandleSessionEnded(t *testing.T) {
	s, _ := newTestSkill(t)

	req := event(models.TypeSessionEndedRequest, nil)
	req.Request.Reason = "USER_INITIATED"
	req.Session.New = true

	resp, err := s.Handle(context.Background(), req)
	assert.NoError(t, err)
	assert.Nil(t, resp)
}

func TestHandleUnsupportedRequestType(t *testing.T) {
	s, _ := newTestSkill(t)

	resp, err := s.Handle(context.Background(), event("CanFulfillIntentRequest", nil))
	assert.Nil(t, resp)

	var ue *UnsupportedRequestTypeError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "CanFulfillIntentRequest", ue.Type)
}

type panickingTracker struct{}

func (panickingTracker) BusTimes(context.Context, []string) ([]models.BusTimes, error) {
	panic("boom")
}

func TestHandleRecoversPanic(t *testing.T) {
	allow, err := routes.Default()
	require.NoError(t, err)

	resp, err := New(panickingTracker{}, allow).Handle(context.Background(), event(models.TypeLaunchRequest, nil))
	assert.Nil(t, resp)
	assert.ErrorContains(t, err, "boom")
}
