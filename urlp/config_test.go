package urlp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/urlp/urlp"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := urlp.LoadConfig(strings.NewReader(`
data_path = "/tmp/urlp"
format = "json"
debug = true
gen_seed = 12
`))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/urlp", cfg.DataPath)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Debug)
	assert.Equal(t, int64(12), cfg.GenSeed)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, urlp.DefaultURI, cfg.Default)
	assert.Equal(t, 10, cfg.GenCount)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := urlp.LoadConfig(strings.NewReader(`format = `))
	assert.Error(t, err)
}
