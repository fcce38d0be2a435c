package configfile

import (
	"encoding/json"
	"io"

	"github.com/DeJeune/llbox/runtime/pkg/host"
	"github.com/docker/docker/errdefs"
	"github.com/docker/go-units"
	"github.com/pkg/errors"
)

// ConfigFile ~/.linglong/config.json 文件信息
type ConfigFile struct {
	// LogLevel is used when neither --log-level nor --debug is given.
	LogLevel string `json:"logLevel,omitempty"`
	// TmpfsSize caps the private tmpfs mounts, e.g. "64m". Empty means no
	// limit.
	TmpfsSize   string   `json:"tmpfsSize,omitempty"`
	CDISpecDirs []string `json:"cdiSpecDirs,omitempty"`
	Filename    string   `json:"-"` // Note: for internal use only
}

// 给定文件名 'fn'，初始化配置文件
func New(fn string) *ConfigFile {
	return &ConfigFile{
		Filename: fn,
	}
}

// LoadFromReader读取配置文件
func (configFile *ConfigFile) LoadFromReader(configData io.Reader) error {
	if err := json.NewDecoder(configData).Decode(configFile); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// GetFilename 返回配置文件名
func (configFile *ConfigFile) GetFilename() string {
	return configFile.Filename
}

// HostOptions converts the file into the tunables handed to the generators.
func (configFile *ConfigFile) HostOptions() (host.Options, error) {
	var o host.Options
	if configFile.TmpfsSize != "" {
		size, err := units.RAMInBytes(configFile.TmpfsSize)
		if err != nil {
			return o, errdefs.InvalidParameter(errors.Wrapf(err, "invalid tmpfsSize in %s", configFile.Filename))
		}
		if size < 0 {
			return o, errdefs.InvalidParameter(errors.Errorf("invalid tmpfsSize in %s: %s", configFile.Filename, configFile.TmpfsSize))
		}
		o.TmpfsSize = size
	}
	o.CDISpecDirs = append(o.CDISpecDirs, configFile.CDISpecDirs...)
	return o, nil
}
