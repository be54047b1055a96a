package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/quantmind-br/cargo-get/internal/domain"
)

// FormatVersion renders the package version according to parts.
// Without part flags the raw version is returned unvalidated.
func FormatVersion(pkg *domain.Package, parts domain.VersionParts, delimiter string) (string, error) {
	if pkg.IsInherited("version") {
		return "", domain.NewInheritedError("version")
	}
	raw := pkg.Version

	if parts.Full || (!parts.Pretty && !parts.Any()) {
		return raw, nil
	}

	v, err := semver.StrictNewVersion(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", domain.ErrInvalidSemver, raw, err)
	}

	if parts.Pretty {
		return "v" + v.String(), nil
	}

	var out []string
	if parts.Major {
		out = append(out, strconv.FormatUint(v.Major(), 10))
	}
	if parts.Minor {
		out = append(out, strconv.FormatUint(v.Minor(), 10))
	}
	if parts.Patch {
		out = append(out, strconv.FormatUint(v.Patch(), 10))
	}
	if parts.Pre {
		out = append(out, v.Prerelease())
	}
	if parts.Build {
		out = append(out, v.Metadata())
	}

	return strings.Join(out, delimiter), nil
}
