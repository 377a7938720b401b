package loader

import "github.com/pocketsim/pocketdb/internal/card"

// RemoteSource is a placeholder for fetching cards from a hosted API.
// The protocol, caching and authentication are not defined yet, so every
// call fails with ErrRemoteUnimplemented.
type RemoteSource struct{}

func (s *RemoteSource) Load(locale string) (card.Collection, error) {
	return nil, ErrRemoteUnimplemented
}
