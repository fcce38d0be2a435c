package config

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/docker/docker/errdefs"
	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/pkg/errors"
)

// Version is the only ociVersion the generators accept.
const Version = "1.0.1"

// Annotation keys set by the package manager on the base document.
const (
	AnnotationPrefix     = "org.deepin.linglong."
	AnnotationAppID      = AnnotationPrefix + "appID"
	AnnotationAppDir     = AnnotationPrefix + "appDir"
	AnnotationRuntimeDir = AnnotationPrefix + "runtimeDir"
	AnnotationBaseDir    = AnnotationPrefix + "baseDir"
	AnnotationOnlyApp    = AnnotationPrefix + "onlyApp"
	// AnnotationDevices holds a comma separated list of fully qualified CDI
	// device names, e.g. "vendor.com/gpu=0".
	AnnotationDevices = AnnotationPrefix + "devices"
)

// CheckVersion rejects documents that do not carry the supported ociVersion.
func CheckVersion(doc *specs.Spec) error {
	if doc == nil {
		return errdefs.InvalidParameter(errors.New("spec document is nil"))
	}
	if doc.Version != Version {
		return errdefs.InvalidParameter(errors.Errorf("unsupported ociVersion %q, expected %q", doc.Version, Version))
	}
	return nil
}

// Annotation returns the value stored under key, or "" when the document has
// no such annotation.
func Annotation(doc *specs.Spec, key string) string {
	if doc.Annotations == nil {
		return ""
	}
	return doc.Annotations[key]
}

// AppID returns the application id annotation, failing when it is missing.
func AppID(doc *specs.Spec) (string, error) {
	appID := Annotation(doc, AnnotationAppID)
	if appID == "" {
		return "", errdefs.InvalidParameter(errors.Errorf("annotation %s is required", AnnotationAppID))
	}
	return appID, nil
}

// OnlyApp reports whether the document asks for a minimal, non desktop
// container.
func OnlyApp(doc *specs.Spec) bool {
	return Annotation(doc, AnnotationOnlyApp) == "true"
}

// Clone returns a deep copy of doc. Every stage works on its own copy so a
// failed stage cannot leak a half-mutated document.
func Clone(doc *specs.Spec) (*specs.Spec, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "marshal spec document")
	}
	var out specs.Spec
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "unmarshal spec document")
	}
	return &out, nil
}

// Load decodes a spec document from r.
func Load(r io.Reader) (*specs.Spec, error) {
	var doc specs.Spec
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errdefs.InvalidParameter(errors.Wrap(err, "decode spec document"))
	}
	return &doc, nil
}

// Save encodes doc to w in the indented form the namespace constructor and
// humans both read.
func Save(w io.Writer, doc *specs.Spec) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode spec document")
	}
	return nil
}

// SetEnv sets name=value in the process environment, replacing an earlier
// entry for the same name.
func SetEnv(p *specs.Process, name, value string) {
	entry := name + "=" + value
	prefix := name + "="
	for i, e := range p.Env {
		if strings.HasPrefix(e, prefix) {
			p.Env[i] = entry
			return
		}
	}
	p.Env = append(p.Env, entry)
}

// EnsureProcess returns doc.Process, creating it when absent.
func EnsureProcess(doc *specs.Spec) *specs.Process {
	if doc.Process == nil {
		doc.Process = &specs.Process{}
	}
	return doc.Process
}

// EnsureLinux returns doc.Linux, creating it when absent.
func EnsureLinux(doc *specs.Spec) *specs.Linux {
	if doc.Linux == nil {
		doc.Linux = &specs.Linux{}
	}
	return doc.Linux
}
