package container

import (
	"bytes"
	"os"

	"github.com/DeJeune/llbox/cmd"
	"github.com/DeJeune/llbox/runtime/config"
	"github.com/docker/docker/errdefs"
	"github.com/docker/docker/pkg/ioutils"
	"github.com/opencontainers/runtime-spec/specs-go"
	"github.com/pkg/errors"
)

// stdio stands for the command's own input or output stream.
const stdio = "-"

// readSpec decodes the document from path, or from stdin for "-".
func readSpec(llboxCli cmd.Cli, path string) (*specs.Spec, error) {
	if path == "" || path == stdio {
		return config.Load(llboxCli.In())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errdefs.InvalidParameter(errors.Wrap(err, "open spec document"))
	}
	defer f.Close()
	return config.Load(f)
}

// writeSpec encodes doc to path, or to stdout for "-". Files are replaced
// atomically so a failed write never leaves a truncated document behind.
func writeSpec(llboxCli cmd.Cli, path string, doc *specs.Spec) error {
	if path == "" || path == stdio {
		return config.Save(llboxCli.Out(), doc)
	}
	var buf bytes.Buffer
	if err := config.Save(&buf, doc); err != nil {
		return err
	}
	if err := ioutils.AtomicWriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errdefs.System(errors.Wrapf(err, "write %s", path))
	}
	return nil
}
