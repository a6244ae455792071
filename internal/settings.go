package internal

import "sync/atomic"

// Settings exposes the runtime switches of the bridge. Values are read on
// every call and can be replaced while the bridge runs.
type Settings struct {
	current atomic.Pointer[Config]
}

func NewSettings(config Config) *Settings {
	s := &Settings{}
	s.Update(config)
	return s
}

func (s *Settings) Update(config Config) {
	s.current.Store(&config)
}

func (s *Settings) AccountUUID() string {
	return s.current.Load().Account
}

func (s *Settings) AutoAcceptInvitations() bool {
	return s.current.Load().AutoAcceptInvitations
}

func (s *Settings) DelayedLocalEcho() bool {
	return s.current.Load().DelayedLocalEcho
}
