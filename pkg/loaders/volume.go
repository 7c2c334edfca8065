package loaders

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-raycaster/pkg/volume"
)

var (
	// ErrDataLength is returned when a raw volume holds fewer bytes than its metadata implies.
	ErrDataLength = errors.New("loaders: raw volume data too short")
	// ErrMetadata is returned for missing or malformed volume metadata.
	ErrMetadata = errors.New("loaders: invalid volume metadata")
)

// MaxVoxels bounds the sample count a volume may declare
const MaxVoxels = 1 << 30

// VolumeMetadata is the content of a .dat volume descriptor
type VolumeMetadata struct {
	Resolution [3]int     // Voxels along X, Y, Z
	Thickness  [3]float64 // Slice thickness along X, Y, Z
}

// Voxels returns the number of samples the raw file must contain
func (m VolumeMetadata) Voxels() int {
	return m.Resolution[0] * m.Resolution[1] * m.Resolution[2]
}

// Validate checks that every axis is positive and the grid holds at most MaxVoxels samples
func (m VolumeMetadata) Validate() error {
	total := 1
	for axis := 0; axis < 3; axis++ {
		r := m.Resolution[axis]
		if r <= 0 {
			return errors.Wrapf(ErrMetadata, "non-positive resolution %d on axis %d", r, axis)
		}
		if r > MaxVoxels/total {
			return errors.Wrapf(ErrMetadata, "resolution %v exceeds %d voxels", m.Resolution, MaxVoxels)
		}
		total *= r

		if t := m.Thickness[axis]; !(t > 0) || math.IsInf(t, 1) {
			return errors.Wrapf(ErrMetadata, "invalid slice thickness %g on axis %d", t, axis)
		}
	}
	return nil
}

// isMetadataSeparator matches the runs of ':', tabs and spaces between keys and values
func isMetadataSeparator(r rune) bool {
	return r == ':' || r == '\t' || r == ' ' || r == '\r'
}

// ReadVolumeMetadata parses "Resolution: x y z" and "SliceThickness: x y z"
// lines. Other keys are ignored; both known keys are required.
func ReadVolumeMetadata(r io.Reader) (VolumeMetadata, error) {
	var (
		meta                       VolumeMetadata
		haveResolution, haveSlices bool
	)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		kv := strings.FieldsFunc(scanner.Text(), isMetadataSeparator)
		if len(kv) == 0 {
			continue
		}

		switch kv[0] {
		case "Resolution":
			if len(kv) < 4 {
				return meta, errors.Wrapf(ErrMetadata, "line %d: Resolution needs 3 values", lineNum)
			}
			for axis := 0; axis < 3; axis++ {
				v, err := strconv.Atoi(kv[axis+1])
				if err != nil {
					return meta, errors.Wrapf(ErrMetadata, "line %d: %v", lineNum, err)
				}
				meta.Resolution[axis] = v
			}
			haveResolution = true
		case "SliceThickness":
			if len(kv) < 4 {
				return meta, errors.Wrapf(ErrMetadata, "line %d: SliceThickness needs 3 values", lineNum)
			}
			for axis := 0; axis < 3; axis++ {
				v, err := strconv.ParseFloat(kv[axis+1], 64)
				if err != nil {
					return meta, errors.Wrapf(ErrMetadata, "line %d: %v", lineNum, err)
				}
				meta.Thickness[axis] = v
			}
			haveSlices = true
		}
	}
	if err := scanner.Err(); err != nil {
		return meta, errors.Wrap(err, "loaders: reading volume metadata")
	}

	if !haveResolution {
		return meta, errors.Wrap(ErrMetadata, "missing Resolution")
	}
	if !haveSlices {
		return meta, errors.Wrap(ErrMetadata, "missing SliceThickness")
	}
	return meta, nil
}

// ReadVolume builds a density field from a metadata source and a raw byte
// source holding exactly x*y*z unsigned samples in [z][y][x] order.
func ReadVolume(dat, raw io.Reader) (*volume.Field, error) {
	meta, err := ReadVolumeMetadata(dat)
	if err != nil {
		return nil, err
	}

	if err := meta.Validate(); err != nil {
		return nil, err
	}
	want := meta.Voxels()

	data := make([]byte, want)
	n, err := io.ReadFull(raw, data)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, errors.Wrapf(ErrDataLength, "read %d of %d bytes", n, want)
	}
	if err != nil {
		return nil, errors.Wrap(err, "loaders: reading raw volume")
	}

	field, err := volume.NewField(meta.Resolution, meta.Thickness, data)
	if err != nil {
		return nil, errors.Wrap(err, "loaders: building volume")
	}
	return field, nil
}

// LoadVolume reads a density field from a .dat descriptor and its .raw data file
func LoadVolume(datPath, rawPath string) (*volume.Field, error) {
	dat, err := os.Open(datPath)
	if err != nil {
		return nil, errors.Wrap(err, "loaders: opening volume metadata")
	}
	defer dat.Close()

	raw, err := os.Open(rawPath)
	if err != nil {
		return nil, errors.Wrap(err, "loaders: opening raw volume")
	}
	defer raw.Close()

	field, err := ReadVolume(dat, raw)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", rawPath)
	}
	return field, nil
}
