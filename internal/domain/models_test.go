package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackage_IsInherited(t *testing.T) {
	pkg := &Package{Inherited: map[string]bool{"license": true}}

	assert.True(t, pkg.IsInherited("license"))
	assert.False(t, pkg.IsInherited("version"))

	empty := &Package{}
	assert.False(t, empty.IsInherited("license"))
}

func TestVersionParts_Any(t *testing.T) {
	assert.False(t, VersionParts{}.Any())
	assert.False(t, VersionParts{Pretty: true}.Any())
	assert.False(t, VersionParts{Full: true}.Any())
	assert.True(t, VersionParts{Major: true}.Any())
	assert.True(t, VersionParts{Build: true}.Any())
}
