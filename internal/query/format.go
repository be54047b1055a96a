package query

import (
	"fmt"
	"strings"

	"github.com/package-url/packageurl-go"

	"github.com/quantmind-br/cargo-get/internal/domain"
)

// Format renders field of pkg, joining lists with delimiter
func Format(pkg *domain.Package, field domain.Field, delimiter string) (string, error) {
	if field != domain.FieldPURL && pkg.IsInherited(field.String()) {
		return "", domain.NewInheritedError(field.String())
	}

	switch field {
	case domain.FieldName:
		return pkg.Name, nil
	case domain.FieldVersion:
		return pkg.Version, nil
	case domain.FieldEdition:
		return deref(pkg.Edition), nil
	case domain.FieldHomepage:
		return deref(pkg.Homepage), nil
	case domain.FieldLicense:
		return deref(pkg.License), nil
	case domain.FieldLinks:
		return deref(pkg.Links), nil
	case domain.FieldDescription:
		return deref(pkg.Description), nil
	case domain.FieldAuthors:
		return strings.Join(pkg.Authors, delimiter), nil
	case domain.FieldKeywords:
		return strings.Join(pkg.Keywords, delimiter), nil
	case domain.FieldCategories:
		return strings.Join(pkg.Categories, delimiter), nil
	case domain.FieldPURL:
		return PackageURL(pkg)
	}

	return "", fmt.Errorf("%w: %s", domain.ErrInvalidSelection, field)
}

// PackageURL returns the purl of the package, e.g. pkg:cargo/serde@1.0.0
func PackageURL(pkg *domain.Package) (string, error) {
	if pkg.IsInherited("version") {
		return "", domain.NewInheritedError("version")
	}
	purl := packageurl.NewPackageURL(packageurl.TypeCargo, "", pkg.Name, pkg.Version, nil, "")
	return purl.ToString(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
