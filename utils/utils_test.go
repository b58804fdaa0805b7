package utils_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portage-tools/portmeta/utils"
)

func TestWriteJSON(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		appFs := afero.NewMemMapFs()

		err := utils.WriteJSON(appFs, "/out/app-editors", "vim.json", map[string]string{"name": "vim"})
		require.NoError(t, err)

		b, err := afero.ReadFile(appFs, "/out/app-editors/vim.json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"name": "vim"}`, string(b))
	})

	t.Run("read-only filesystem", func(t *testing.T) {
		appFs := afero.NewReadOnlyFs(afero.NewMemMapFs())

		err := utils.WriteJSON(appFs, "/out", "vim.json", nil)
		assert.ErrorContains(t, err, "unable to create a directory")
	})
}
