package osinfo

import (
	"bufio"
	"fmt"
	"runtime"
	"strings"

	"github.com/jomtui/jom/internal/errdefs"
	"github.com/spf13/afero"
)

// OSReleasePath is where the host describes itself.
const OSReleasePath = "/etc/os-release"

type OSInfo struct {
	Distribution string
	IDLike       []string
	VersionID    string
	PrettyName   string
	Architecture string
}

var getOsFunc = func() string { return runtime.GOOS }

// GetOSInfo reads os-release from fs. Only linux hosts have one.
func GetOSInfo(fs afero.Fs) (*OSInfo, error) {
	if goos := getOsFunc(); goos != "linux" {
		return nil, errdefs.NewCustomError(errdefs.ErrTypeGeneric, fmt.Sprintf("Only linux is supported, but I found %s", goos))
	}

	info := &OSInfo{
		Architecture: runtime.GOARCH,
	}
	if err := readOSRelease(fs, info); err != nil {
		return nil, errdefs.Wrap(errdefs.ErrTypeGeneric, "Failed to detect Linux distribution", err)
	}
	return info, nil
}

func readOSRelease(fs afero.Fs, info *OSInfo) error {
	file, err := fs.Open(OSReleasePath)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := parts[0]
		value := strings.Trim(parts[1], "\"'")

		switch key {
		case "ID":
			info.Distribution = value
		case "ID_LIKE":
			info.IDLike = strings.Fields(value)
		case "VERSION_ID":
			info.VersionID = value
		case "PRETTY_NAME":
			info.PrettyName = value
		}
	}

	return scanner.Err()
}

// Candidates lists the IDs to try against a catalog, most specific first.
func (i *OSInfo) Candidates() []string {
	ids := make([]string, 0, 1+len(i.IDLike))
	if i.Distribution != "" {
		ids = append(ids, i.Distribution)
	}
	return append(ids, i.IDLike...)
}
