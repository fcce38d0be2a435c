package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	configfile "github.com/DeJeune/llbox/cli/config/configfile"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	EnvOverrideConfigDir = "LINGLONG_CONFIG"
	ConfigFileName       = "config.json"
	configFileDir        = ".linglong"
)

var (
	configDir     string
	initConfigDir = new(sync.Once)
)

func resetConfigDir() {
	configDir = ""
	initConfigDir = new(sync.Once)
}

// Dir 返回配置文件所在目录
func Dir() string {
	initConfigDir.Do(func() {
		configDir = os.Getenv(EnvOverrideConfigDir)
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				logrus.WithError(err).Warn("cannot determine home directory, using the working directory")
			}
			configDir = filepath.Join(home, configFileDir)
		}
	})
	return configDir
}

// SetDir overrides the configuration directory, e.g. from --config.
func SetDir(dir string) {
	initConfigDir.Do(func() {})
	configDir = filepath.Clean(dir)
}

func Path(p ...string) (string, error) {
	path := filepath.Join(append([]string{Dir()}, p...)...)
	if !strings.HasPrefix(path, Dir()+string(filepath.Separator)) {
		return "", errors.Errorf("path %q is outside of root config directory %q", path, Dir())
	}
	return path, nil
}

// LoadFromReader 从Reader创建配置文件对象
func LoadFromReader(configData io.Reader) (*configfile.ConfigFile, error) {
	configFile := configfile.New("")
	err := configFile.LoadFromReader(configData)
	return configFile, err
}

func Load(configDir string) (*configfile.ConfigFile, error) {
	if configDir == "" {
		configDir = Dir()
	}
	return load(configDir)
}

// A missing file is not an error, the defaults apply.
func load(configDir string) (*configfile.ConfigFile, error) {
	filename := filepath.Join(configDir, ConfigFileName)
	configFile := configfile.New(filename)

	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return configFile, nil
		}
		return configFile, errors.Wrap(err, filename)
	}
	defer file.Close()
	if err := configFile.LoadFromReader(file); err != nil {
		return configFile, errors.Wrap(err, filename)
	}
	return configFile, nil
}

// LoadDefaultConfigFile 尝试加载默认配置文件, 出错时只打印警告
func LoadDefaultConfigFile(stderr io.Writer) *configfile.ConfigFile {
	configFile, err := load(Dir())
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "WARNING: Error loading config file: %v\n", err)
	}
	return configFile
}
