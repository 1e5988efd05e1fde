package syscfghelper

import (
	"errors"
	"os"
	"runtime"
)

////////////////////////////////////////////////////////////////////////////////

const (
	SYS_STATE_DIR   = ".unisat"
	SYS_LOG_FILE    = "unisat.log"
	CLIENT_LOG_FILE = "client.log"
	SYS_CONF_FILE   = "conf.yaml"
)

////////////////////////////////////////////////////////////////////////////////

func getHomePath() (string, error) {
	var homepath string
	if runtime.GOOS == "windows" {
		homepath = os.Getenv("appdata")
	} else {
		homepath = os.Getenv("HOME")
	}
	if homepath == "" {
		return "", errors.New("failed to get home path from env")
	}

	return homepath, nil
}

func fileExists(filename string) (bool, error) {
	info, err := os.Stat(filename)
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
