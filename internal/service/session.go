package service

import (
	"context"

	"github.com/rs/zerolog"

	"abilitydraft-stats/internal/api"
	"abilitydraft-stats/internal/constants"
)

type SessionAPI interface {
	GetSession(ctx context.Context) (*api.SessionData, error)
}

// SessionService surfaces the current authenticated identity. The login
// flow itself is an external OpenID redirect; this only reports who is
// signed in, or nil.
type SessionService struct {
	client SessionAPI
	logger zerolog.Logger
}

func NewSessionService(client *api.Client, logger zerolog.Logger) *SessionService {
	return &SessionService{client: client, logger: logger}
}

func (s *SessionService) Current(ctx context.Context) (*SessionView, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	data, err := s.client.GetSession(apiCtx)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	return &SessionView{
		SteamID:  data.SteamID,
		Nickname: data.Nickname,
		Avatar:   data.Avatar,
	}, nil
}
