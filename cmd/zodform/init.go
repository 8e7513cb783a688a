package main

import (
	"fmt"

	"github.com/ilyichv/shadcn-zod-form/pkg/config"
)

func (a *app) initCommand(args []string) error {
	fs, cwd, verbose := a.flagSet("init")
	alias := fs.String("alias", config.DefaultFormAlias, "import alias of the forms directory")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	a.configureLogger(*verbose)

	path, err := config.Init(*cwd, *alias)
	if err != nil {
		return err
	}
	a.logger.Debug("updated config", "path", path, "alias", *alias)
	fmt.Fprintf(a.stdout, "Forms alias %s written to %s\n", *alias, path)
	return nil
}
