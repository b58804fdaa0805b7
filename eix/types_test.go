package eix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portage-tools/portmeta/eix"
)

func TestPackageInstalled(t *testing.T) {
	testCases := []struct {
		name          string
		versions      []eix.PackageVersion
		wantInstalled bool
		wantVersionID string
	}{
		{
			name: "no versions",
		},
		{
			name: "none installed",
			versions: []eix.PackageVersion{
				{ID: "1.0"},
				{ID: "2.0"},
			},
		},
		{
			name: "first installed version wins",
			versions: []eix.PackageVersion{
				{ID: "1.0"},
				{ID: "2.0", Installed: true},
				{ID: "3.0", Installed: true},
			},
			wantInstalled: true,
			wantVersionID: "2.0",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pkg := eix.Package{
				Category: "app-misc",
				Name:     "foo",
				Versions: tc.versions,
			}
			assert.Equal(t, tc.wantInstalled, pkg.Installed())

			v := pkg.InstalledVersion()
			if tc.wantVersionID == "" {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tc.wantVersionID, v.ID)
		})
	}
}

func TestPackageFullName(t *testing.T) {
	pkg := eix.Package{Category: "dev-db", Name: "mysql"}
	assert.Equal(t, "dev-db/mysql", pkg.FullName())
}
