package appenv

import (
	"bufio"
	"log"
	"os"
	"strings"
)

var (
	isProd  = false
	isStag  = false
	isLocal = false
	EnvName = ""
)

func init() {
	loadDotEnv(".env")

	appEnv := os.Getenv("APP_ENV")
	switch appEnv {
	case "local", "":
		isLocal = true
		appEnv = "local"
	case "stag":
		isStag = true
	case "prod":
		isProd = true
	default:
		log.Fatalf("The value for APP_ENV=%q is not one of local, stag or prod, aborting...", appEnv)
	}

	EnvName = appEnv
}

// loads the key=value pairs of the file into the process env.
// vars that are already set in the environment win over the file.
func loadDotEnv(path string) {
	file, err := os.Open(path)
	if err != nil {
		// no .env file, the env is provided by the host (docker, systemd, etc..)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		// escape quotes if any
		var q byte = '"'
		lastIndex := len(val) - 1
		if lastIndex > 0 && val[0] == q && val[lastIndex] == q {
			val = val[1:lastIndex]
		}

		if _, exists := os.LookupEnv(key); exists {
			continue
		}

		err := os.Setenv(key, val)
		if err != nil {
			log.Fatal("can not set env var error: ", err)
		}
	}
}

func IsProd() bool {
	return isProd
}
func IsStag() bool {
	return isStag
}
func IsLocal() bool {
	return isLocal
}

func IsStagOrLocal() bool {
	return IsStag() || IsLocal()
}

func IsProdOrStag() bool {
	return IsProd() || IsStag()
}
