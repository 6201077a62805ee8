package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Directory and file names shared with the rest of the pipeline.
const (
	dataRootDir = "reddit_data"

	// "ouput" is intentional; existing datasets live under this name and
	// renaming it would orphan them.
	outputDirName = "ouput"

	mediaDirName   = "media"
	mosaicsDirName = "mosaics"

	mediaIndexName = "media.json.gz"
	featuresName   = "image_features.csv.gz"
	knnIndexName   = "knn.pkl"
	animationName  = "doppler_mosaic.mp4"
)

// ErrInvalidIdentifier is returned when a subreddit name cannot form a
// single path segment.
var ErrInvalidIdentifier = errors.New("invalid subreddit identifier")

// Layout holds every filesystem location the pipeline reads or writes for
// one subreddit. All paths are relative to the process working directory.
type Layout struct {
	// Directories
	WorkingDir string `json:"working_dir"`
	MediaDir   string `json:"media_dir"`
	MosaicDir  string `json:"mosaic_dir"`
	OutputDir  string `json:"output_dir"`

	// Files (locations only; formats belong to the stages that write them)
	MediaIndexFile string `json:"media_index_file"`
	FeaturesFile   string `json:"features_file"`
	KNNFile        string `json:"knn_file"`
	AnimationFile  string `json:"animation_file"`
}

// Resolve derives the layout for the given subreddit. It is pure: no
// filesystem access, and the same input always produces the same layout.
// OutputDir is fixed and does not depend on the subreddit.
func Resolve(subreddit string) (Layout, error) {
	if err := validateIdentifier(subreddit); err != nil {
		return Layout{}, err
	}

	working := filepath.Join(dataRootDir, subreddit)

	return Layout{
		WorkingDir:     working,
		MediaDir:       filepath.Join(working, mediaDirName),
		MosaicDir:      filepath.Join(working, mosaicsDirName),
		OutputDir:      outputDirName,
		MediaIndexFile: filepath.Join(working, mediaIndexName),
		FeaturesFile:   filepath.Join(working, featuresName),
		KNNFile:        filepath.Join(working, knnIndexName),
		// Upstream tooling built this path by joining OutputDir with a
		// rooted component, which resolves to the filesystem root and
		// discards OutputDir entirely. filepath.Join keeps the file
		// inside OutputDir, which is what every consumer expects.
		AnimationFile: filepath.Join(outputDirName, animationName),
	}, nil
}

// Dirs returns the directories the pipeline writes into, in provisioning
// order. File paths are excluded; their parents are all covered here.
func (l Layout) Dirs() []string {
	return []string{l.WorkingDir, l.MediaDir, l.OutputDir, l.MosaicDir}
}

// EnsureDirs creates every directory in the layout, including missing
// parents. Directories that already exist are treated as success, so the
// call is idempotent and safe to race.
func (l Layout) EnsureDirs() error {
	for _, dir := range l.Dirs() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}
	return nil
}

// validateIdentifier rejects names that cannot serve as a single path
// segment on the host filesystem. Anything else is passed through opaquely.
func validateIdentifier(s string) error {
	switch {
	case s == "":
		return fmt.Errorf("%w: empty name", ErrInvalidIdentifier)
	case s == "." || s == "..":
		return fmt.Errorf("%w: %q is a reserved path segment", ErrInvalidIdentifier, s)
	case strings.ContainsRune(s, '/') || strings.ContainsRune(s, filepath.Separator):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidIdentifier, s)
	case strings.ContainsRune(s, 0):
		return fmt.Errorf("%w: name contains a NUL byte", ErrInvalidIdentifier)
	}
	return nil
}
