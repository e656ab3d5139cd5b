package handler

import (
	"os"
	"testing"

	"image-board/internal/config"
	"image-board/internal/testutils"
)

var testCfg *config.Config

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "image-board-system-handler-config-*")
	if err != nil {
		panic(err)
	}

	envs := []testutils.SavedEnv{
		testutils.SetEnv("IMAGE_BOARD_SERVER_MODE", "debug"),
		testutils.SetEnv("IMAGE_BOARD_SESSION_SECRET", "test_secret"),
		testutils.SetEnv("IMAGE_BOARD_SESSION_COOKIE_NAME", "sid"),
		testutils.SetEnv("IMAGE_BOARD_REDIS_ENABLED", "false"),
	}
	testCfg, err = config.Load(tmpDir)
	if err != nil {
		panic(err)
	}

	code := m.Run()

	testutils.RestoreEnv(envs)
	_ = os.RemoveAll(tmpDir)
	os.Exit(code)
}
