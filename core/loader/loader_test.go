package loader_test

import (
	"errors"
	"testing"

	"fabric-index/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	mgr := loader.NewManager()
	enabled := &stubFeature{name: "on", enabled: true}
	disabled := &stubFeature{name: "off", enabled: false}
	mgr.Register(enabled)
	mgr.Register(disabled)

	err := mgr.LoadAll(fiber.New())

	require.NoError(t, err)
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
}

func TestManager_LoadAll_Error(t *testing.T) {
	mgr := loader.NewManager()
	mgr.Register(&stubFeature{name: "broken", enabled: true, loadErr: errors.New("boom")})

	err := mgr.LoadAll(fiber.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
