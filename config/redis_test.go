package config

import (
	"os"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

// saveEnvVars saves the original values of the given environment variable keys.
func saveEnvVars(vars map[string]string) (map[string]string, map[string]bool) {
	orig := make(map[string]string)
	origSet := make(map[string]bool)

	for k := range vars {
		if oldVal, exists := os.LookupEnv(k); exists {
			orig[k] = oldVal
			origSet[k] = true
		}
	}

	return orig, origSet
}

// applyEnvVars applies the environment variables from the vars map.
func applyEnvVars(vars map[string]string) {
	for k, v := range vars {
		if v == "" {
			os.Unsetenv(k)
		} else {
			os.Setenv(k, v)
		}
	}
}

// restoreEnvVars restores the original environment variable values.
func restoreEnvVars(vars map[string]string, orig map[string]string, origSet map[string]bool) {
	for k := range vars {
		if origSet[k] {
			os.Setenv(k, orig[k])
		} else {
			os.Unsetenv(k)
		}
	}
}

// withEnv sets environment variables for the duration of fn and restores them after.
// The Redis singleton is reset before and after so each call observes the new env.
func withEnv(t *testing.T, vars map[string]string, fn func(t *testing.T)) {
	t.Helper()
	orig, origSet := saveEnvVars(vars)
	applyEnvVars(vars)
	ResetRedisClientForTest()

	defer func() {
		restoreEnvVars(vars, orig, origSet)
		ResetRedisClientForTest()
	}()

	fn(t)
}

func TestConnectRedis_Disabled(t *testing.T) {
	withEnv(t, map[string]string{"REDIS_ENABLED": "false"}, func(t *testing.T) {
		rdb, err := ConnectRedis()
		assert.NoError(t, err)
		assert.Nil(t, rdb)
	})
}

func TestConnectRedis_DefaultValues(t *testing.T) {
	withEnv(t, map[string]string{"REDIS_ENABLED": "", "REDIS_ADDR": "", "REDIS_PASS": "", "REDIS_DB": ""}, func(t *testing.T) {
		// Should return nil when disabled (default)
		rdb, err := ConnectRedis()
		assert.NoError(t, err)
		assert.Nil(t, rdb)
	})
}

func TestConnectRedis_InvalidAddress(t *testing.T) {
	withEnv(t, map[string]string{"REDIS_ENABLED": "true", "REDIS_ADDR": "invalid-address:99999"}, func(t *testing.T) {
		rdb, err := ConnectRedis()
		assert.Error(t, err)
		assert.Nil(t, rdb)
		assert.Nil(t, GetRedisClient())
	})
}

func TestConnectRedis_ConcurrentCalls(t *testing.T) {
	withEnv(t, map[string]string{"REDIS_ENABLED": "false"}, func(t *testing.T) {
		type callResult struct {
			rdb interface{}
			err error
		}
		done := make(chan callResult, 5)
		for i := 0; i < 5; i++ {
			go func() {
				rdb, err := ConnectRedis()
				done <- callResult{rdb: rdb, err: err}
			}()
		}

		for i := 0; i < 5; i++ {
			res := <-done
			assert.NoError(t, res.err)
			assert.Nil(t, res.rdb)
		}
	})
}

func TestRedisTestHelpers_SetAndReset(t *testing.T) {
	original := GetRedisClient()
	defer SetRedisClientForTest(original)

	rdb, _ := redismock.NewClientMock()
	SetRedisClientForTest(rdb)
	assert.Equal(t, rdb, GetRedisClient())

	ResetRedisClientForTest()
	assert.Nil(t, GetRedisClient())
}
