package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/chazu/shellforge/pkg/compose"
	"github.com/chazu/shellforge/pkg/kernel"
)

// Job is one export run: meshes land under Dir/ID so concurrent jobs never
// share an output location.
type Job struct {
	ID  string
	Dir string
	Log zerolog.Logger
}

// NewJob creates a job with a fresh identifier under the given output
// directory. An empty id gets a generated UUID.
func NewJob(dir, id string, log zerolog.Logger) *Job {
	if id == "" {
		id = uuid.NewString()
	}
	return &Job{ID: id, Dir: dir, Log: log}
}

// Path returns the job's output directory.
func (j *Job) Path() string {
	return filepath.Join(j.Dir, j.ID)
}

// WriteParts meshes every part of a composition through the kernel and
// writes enclosure_<part>.stl for each, plus a best-effort 3MF sibling.
// The returned map goes from part name to its STL path.
func (j *Job) WriteParts(k kernel.Kernel, res *compose.Result) (map[string]string, error) {
	if err := os.MkdirAll(j.Path(), 0o755); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(res.Parts))
	for name := range res.Parts {
		names = append(names, name)
	}
	sort.Strings(names)

	artifacts := make(map[string]string, len(names))
	for _, name := range names {
		mesh, err := k.ToMesh(res.Parts[name])
		if err != nil {
			return nil, fmt.Errorf("mesh %s: %w", name, err)
		}
		mesh.PartName = name

		stlPath := filepath.Join(j.Path(), "enclosure_"+name+".stl")
		if err := WriteSTLFile(stlPath, mesh); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		artifacts[name] = stlPath

		tmfPath := filepath.Join(j.Path(), "enclosure_"+name+".3mf")
		if err := Write3MF(tmfPath, mesh); err != nil {
			j.Log.Warn().Str("part", name).Err(err).Msg("3mf export failed")
		} else {
			artifacts[name+"_3mf"] = tmfPath
		}
	}
	return artifacts, nil
}
