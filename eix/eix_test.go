package eix_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portage-tools/portmeta/eix"
)

func TestParsePackages(t *testing.T) {
	data, err := os.ReadFile("testdata/packages.xml")
	require.NoError(t, err)

	packages := eix.ParsePackages(data)
	require.Len(t, packages, 3)

	vim := packages[0]
	assert.Equal(t, "app-editors", vim.Category)
	assert.Equal(t, "vim", vim.Name)
	assert.Equal(t, "app-editors/vim", vim.FullName())
	assert.Equal(t, "Vim, an improved vi-style text editor", vim.Description)
	assert.Equal(t, "https://www.vim.org/", vim.Homepage)
	assert.Equal(t, []string{"vim"}, vim.Licenses)
	require.Len(t, vim.Versions, 2)

	installed := vim.Versions[0]
	assert.Equal(t, "9.0.1000", installed.ID)
	assert.Equal(t, "8", installed.EAPI)
	assert.Equal(t, "gentoo", installed.Repository)
	assert.True(t, installed.Installed)
	assert.False(t, installed.Virtual)
	assert.Equal(t, "https://github.com/vim/vim/archive/v9.0.1000.tar.gz", installed.SrcURI)
	assert.Equal(t, []string{"acl", "crypt", "cscope", "nls", "sound"}, installed.IUse)
	assert.Equal(t, []string{"nls", "sound"}, installed.IUseDefault)
	assert.Equal(t, "app-eselect/eselect-vi >=app-editors/vim-core-9.0.1000", installed.Depend)
	assert.Equal(t, "app-eselect/eselect-vi", installed.RDepend)
	assert.Empty(t, installed.BDepend)
	assert.Equal(t, "sound? ( nls )", installed.RequiredUse)

	unstable := vim.Versions[1]
	assert.False(t, unstable.Installed)
	assert.Equal(t, []string{"unstable"}, unstable.Masks)
	assert.Equal(t, []string{"package"}, unstable.Unmasks)
	assert.Equal(t, []string{"test"}, unstable.Restricts)
	assert.Equal(t, []string{"interactive"}, unstable.Properties)
	assert.Empty(t, unstable.IUseDefault)

	nano := packages[1]
	assert.Equal(t, "app-editors/nano", nano.FullName())
	assert.Equal(t, []string{"GPL-3+", "LGPL-2.1+"}, nano.Licenses)
	require.Len(t, nano.Versions, 1)
	assert.Equal(t, "7.2", nano.Versions[0].ID)

	virtual := packages[2]
	assert.Equal(t, "virtual/editor", virtual.FullName())
	require.Len(t, virtual.Versions, 1)
	assert.True(t, virtual.Versions[0].Virtual)
}

func TestParsePackagesUseFlagsFirstWins(t *testing.T) {
	data, err := os.ReadFile("testdata/packages.xml")
	require.NoError(t, err)

	packages := eix.ParsePackages(data)
	require.NotEmpty(t, packages)
	installed := packages[0].Versions[0]

	// The version declares a second use element with enabled="1"; only the
	// first is consulted.
	assert.Equal(t, []string{"acl", "nls"}, installed.UseEnabled)
	assert.Equal(t, []string{"crypt", "cscope"}, installed.UseDisabled)
}

func TestParsePackagesIUseDefaultSubset(t *testing.T) {
	data, err := os.ReadFile("testdata/packages.xml")
	require.NoError(t, err)

	for _, pkg := range eix.ParsePackages(data) {
		for _, v := range pkg.Versions {
			assert.Subset(t, v.IUse, v.IUseDefault, "%s %s", pkg.FullName(), v.ID)
		}
	}
}

func TestParsePackagesDegradedInput(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "empty input",
			input: "",
			want:  0,
		},
		{
			name:  "binary garbage",
			input: "\x00\x01\x02 not xml",
			want:  0,
		},
		{
			name: "missing end tags",
			input: `<eixdump><category name="app-misc"><package name="foo">` +
				`<version id="1.0"`,
			want: 1,
		},
		{
			name: "comments ignored",
			input: `<eixdump><!-- generated --><category name="app-misc">` +
				`<package name="foo"><!-- no versions --></package></category></eixdump>`,
			want: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			packages := eix.ParsePackages([]byte(tc.input))
			assert.Len(t, packages, tc.want)
		})
	}
}
