package cli

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dungeon/pkg/dungeon"
	"github.com/matzehuels/dungeon/pkg/errors"
)

// configCommand creates the config command, which prints the effective
// configuration as TOML or saves it as the user default.
func (c *CLI) configCommand() *cobra.Command {
	var (
		flags configFlags
		save  bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Example: `  dungeon config --seed 9 > dungeon.toml
  dungeon config --iterations 4 --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := dungeon.EncodeConfig(&buf, cfg); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
			}
			if !save {
				_, err := c.Out.Write(buf.Bytes())
				return err
			}

			dir, err := configDir()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "locate config directory")
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
			}
			path := filepath.Join(dir, configFileName)
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
			}
			printSuccess(c.Out, "Saved default configuration")
			printFile(c.Out, path)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&save, "save", false, "save as the default config in ~/.config/dungeon/dungeon.toml")

	return cmd
}
