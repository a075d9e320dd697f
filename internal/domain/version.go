package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// tagPrefix is the only prefix carried over from a tag to its successor.
const tagPrefix = "v"

var digitRuns = regexp.MustCompile(`[0-9]+`)

// Version wraps semver.Version with the prefix of the tag it was read from.
type Version struct {
	*semver.Version
	Prefix string
}

// ParseTag reduces a tag to a three component version built from its digit
// runs. Missing components are zero; components after the third are ignored.
func ParseTag(tag string) (*Version, error) {
	runs := digitRuns.FindAllString(tag, -1)
	if len(runs) == 0 {
		return nil, fmt.Errorf("%w: %q contains no digits", ErrInvalidTagFormat, tag)
	}
	var parts [3]uint64
	for i := 0; i < len(parts) && i < len(runs); i++ {
		n, err := strconv.ParseUint(runs[i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: component %q of %q: %v", ErrInvalidTagFormat, runs[i], tag, err)
		}
		parts[i] = n
	}
	prefix := ""
	if strings.HasPrefix(tag, tagPrefix) {
		prefix = tagPrefix
	}
	return &Version{
		Version: semver.New(parts[0], parts[1], parts[2], "", ""),
		Prefix:  prefix,
	}, nil
}

// BumpPatch increments the third component and keeps the prefix.
func (v *Version) BumpPatch() *Version {
	next := v.IncPatch()
	return &Version{Version: &next, Prefix: v.Prefix}
}

// String returns the prefixed major.minor.patch form.
func (v *Version) String() string {
	return v.Prefix + v.Version.String()
}

// SuggestNextVersion returns the tag that follows latestTag: the first two
// components are kept and the third is always incremented.
func SuggestNextVersion(latestTag string) (string, error) {
	v, err := ParseTag(latestTag)
	if err != nil {
		return "", err
	}
	return v.BumpPatch().String(), nil
}
