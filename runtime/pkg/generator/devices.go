package generator

import (
	"fmt"
	"strings"

	"github.com/DeJeune/llbox/runtime/config"
	"github.com/DeJeune/llbox/runtime/pkg/host"
	"github.com/docker/docker/errdefs"
	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"tags.cncf.io/container-device-interface/pkg/cdi"
)

// maxVideoDevices bounds the /dev/videoN probe.
const maxVideoDevices = 64

// Devices exposes the display, sound and camera devices of the host, plus
// any CDI devices the package manager asked for.
func Devices(doc *specs.Spec, snap *host.Snapshot) error {
	config.AddMounts(doc,
		config.BindRO("/run/udev", "/run/udev"),
		config.Bind("/dev/dri", "/dev/dri"),
		config.Bind("/dev/snd", "/dev/snd"),
	)

	// Video devices are numbered densely, the first gap ends the scan.
	for i := 0; i < maxVideoDevices; i++ {
		dev := fmt.Sprintf("/dev/video%d", i)
		if !snap.Exists(dev) {
			logrus.Debugf("%s not found, stop probing video devices", dev)
			break
		}
		config.AddMounts(doc, config.Bind(dev, dev))
	}

	if requested := config.Annotation(doc, config.AnnotationDevices); requested != "" {
		if err := injectCDIDevices(doc, snap.Options.CDISpecDirs, splitDevices(requested)); err != nil {
			return err
		}
	}
	return nil
}

func splitDevices(s string) []string {
	var devices []string
	for _, d := range strings.Split(s, ",") {
		if d = strings.TrimSpace(d); d != "" {
			devices = append(devices, d)
		}
	}
	return devices
}

// injectCDIDevices resolves fully qualified CDI names against the specs found
// in dirs and applies their container edits to doc. The devices were asked
// for explicitly, so any unresolved name fails the launch.
func injectCDIDevices(doc *specs.Spec, dirs, devices []string) error {
	if len(devices) == 0 {
		return nil
	}
	options := []cdi.Option{cdi.WithAutoRefresh(false)}
	if len(dirs) > 0 {
		options = append(options, cdi.WithSpecDirs(dirs...))
	}
	cache, err := cdi.NewCache(options...)
	if cache == nil {
		return errdefs.System(errors.Wrap(err, "create CDI cache"))
	}
	if err != nil {
		// Broken spec files elsewhere in the directories do not matter
		// unless they define one of the requested devices.
		logrus.WithError(err).Warn("CDI cache refreshed with errors")
	}
	unresolved, err := cache.InjectDevices(doc, devices...)
	if err != nil {
		return errdefs.InvalidParameter(errors.Wrapf(err, "inject CDI devices %v (unresolved %v)", devices, unresolved))
	}
	logrus.Debugf("injected CDI devices %v", devices)
	return nil
}
