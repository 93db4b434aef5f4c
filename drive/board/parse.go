package board

import (
	"errors"
	"strings"

	"github.com/Masterminds/semver"
)

const bannerPrefix = "WB "

func parseBanner(data string) (*semver.Version, error) {
	data = strings.TrimSpace(data)
	if !strings.HasPrefix(data, bannerPrefix) {
		return nil, errors.New("invalid banner: " + data)
	}
	return semver.NewVersion(strings.TrimSpace(strings.TrimPrefix(data, bannerPrefix)))
}
