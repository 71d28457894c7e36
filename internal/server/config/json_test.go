package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJsonConfig_Unmarshal(t *testing.T) {
	raw := `{
		"endpoint_addr": ":8081",
		"database_dsn": "postgres://u:p@h:5432/db",
		"secret_key": "json-secret",
		"token_validity_duration": "12h",
		"admin_username": "root",
		"gin_mode": "debug"
	}`

	c := &JsonConfig{}
	require.NoError(t, json.Unmarshal([]byte(raw), c))

	require.Equal(t, ":8081", c.EndpointAddr)
	require.Equal(t, "postgres://u:p@h:5432/db", c.DatabaseDSN)
	require.Equal(t, "json-secret", c.SecretKey)
	require.Equal(t, 12*time.Hour, c.TokenValidityDuration.Duration)
	require.Equal(t, "root", c.AdminUsername)
	require.Equal(t, "debug", c.GinMode)
}
