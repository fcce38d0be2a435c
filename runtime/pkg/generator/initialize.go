package generator

import (
	"fmt"
	"path/filepath"

	"github.com/DeJeune/llbox/runtime/config"
	"github.com/DeJeune/llbox/runtime/pkg/host"
	"github.com/DeJeune/llbox/runtime/utils"
	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/sirupsen/logrus"
)

// Initialize lays out the layers named by the package manager: the base
// layer becomes the read-only root, the runtime and the application are
// bound at their fixed locations. Layers whose annotation is absent are
// skipped.
func Initialize(doc *specs.Spec, snap *host.Snapshot) error {
	if baseDir := config.Annotation(doc, config.AnnotationBaseDir); baseDir != "" {
		doc.Root = &specs.Root{
			Path:     filepath.Join(baseDir, "files"),
			Readonly: true,
		}
	} else {
		logrus.Debugf("annotation %s not set, keeping root %+v", config.AnnotationBaseDir, doc.Root)
	}

	if runtimeDir := config.Annotation(doc, config.AnnotationRuntimeDir); runtimeDir != "" {
		config.AddMounts(doc, config.BindRO(filepath.Join(runtimeDir, "files"), utils.RuntimeMountPoint))
	}

	if appDir := config.Annotation(doc, config.AnnotationAppDir); appDir != "" {
		appID := config.Annotation(doc, config.AnnotationAppID)
		if appID == "" {
			logrus.Warnf("annotation %s set without %s, application files not mounted",
				config.AnnotationAppDir, config.AnnotationAppID)
		} else {
			config.AddMounts(doc, config.BindRO(filepath.Join(appDir, "files"), fmt.Sprintf(utils.AppFilesFormat, appID)))
		}
	}

	doc.Hostname = utils.DefaultHostname
	p := config.EnsureProcess(doc)
	p.User.UID = uint32(snap.UID)
	p.User.GID = uint32(snap.GID)
	return nil
}
